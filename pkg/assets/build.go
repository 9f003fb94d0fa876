package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// hashLen is the number of hex digits of the content hash kept in names.
const hashLen = 8

// Fingerprint inserts a hash of data before the extension of name:
// "css/app.css" becomes "css/app.3f2a9c1e.css".
func Fingerprint(name string, data []byte) string {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])[:hashLen]

	dir, file := path.Split(name)
	ext := path.Ext(file)
	if ext == file {
		// Dotfiles like ".nojekyll" have no base to hash.
		ext = ""
	}
	return dir + strings.TrimSuffix(file, ext) + "." + hash + ext
}

// Build copies every regular file under srcDir into dstDir with a
// fingerprinted name and returns the manifest. Names in the manifest use
// forward slashes relative to srcDir. Files matching any skip pattern
// (matched against the base name) are left out.
func Build(srcDir, dstDir string, skip ...string) (*Manifest, error) {
	m := NewManifest()
	err := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != srcDir && skipped(d.Name(), skip) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		hashed := Fingerprint(name, data)

		dst := filepath.Join(dstDir, filepath.FromSlash(hashed))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
		m.Set(name, hashed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func skipped(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

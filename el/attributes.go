// This file re-exports markup attribute helpers for the el package.
package el

import "github.com/vango-dev/starter/pkg/markup"

func Attribute(name, value string) Attr {
	return markup.Attribute(name, value)
}
func BoolAttr(name string, on bool) Attr {
	return markup.BoolAttr(name, on)
}
func Class(tokens ...string) Attr {
	return markup.Class(tokens...)
}
func Classes(set map[string]bool) Attr {
	return markup.Classes(set)
}
func ID(id string) Attr {
	return markup.ID(id)
}
func StyleAttr(style string) Attr {
	return markup.StyleAttr(style)
}
func TitleAttr(title string) Attr {
	return markup.TitleAttr(title)
}
func Data(key, value string) Attr {
	return markup.Data(key, value)
}
func Role(role string) Attr {
	return markup.Role(role)
}
func Aria(key, value string) Attr {
	return markup.Aria(key, value)
}
func AriaLabel(label string) Attr {
	return markup.AriaLabel(label)
}
func AriaHidden(hidden bool) Attr {
	return markup.AriaHidden(hidden)
}
func AriaExpanded(expanded bool) Attr {
	return markup.AriaExpanded(expanded)
}
func AriaCurrent(value string) Attr {
	return markup.AriaCurrent(value)
}
func TabIndex(index int) Attr {
	return markup.TabIndex(index)
}
func Lang(lang string) Attr {
	return markup.Lang(lang)
}
func Dir(dir string) Attr {
	return markup.Dir(dir)
}
func Href(url string) Attr {
	return markup.Href(url)
}
func Src(url string) Attr {
	return markup.Src(url)
}
func Alt(text string) Attr {
	return markup.Alt(text)
}
func Target(target string) Attr {
	return markup.Target(target)
}
func Rel(rel string) Attr {
	return markup.Rel(rel)
}
func Width(px int) Attr {
	return markup.Width(px)
}
func Height(px int) Attr {
	return markup.Height(px)
}
func Charset(charset string) Attr {
	return markup.Charset(charset)
}
func Content(content string) Attr {
	return markup.Content(content)
}
func Action(url string) Attr {
	return markup.Action(url)
}
func Method(method string) Attr {
	return markup.Method(method)
}
func For(id string) Attr {
	return markup.For(id)
}
func Name(name string) Attr {
	return markup.Name(name)
}
func Value(value string) Attr {
	return markup.Value(value)
}
func Type(t string) Attr {
	return markup.Type(t)
}
func Placeholder(text string) Attr {
	return markup.Placeholder(text)
}
func Disabled() Attr {
	return markup.Disabled()
}
func Checked() Attr {
	return markup.Checked()
}
func Selected() Attr {
	return markup.Selected()
}
func Required() Attr {
	return markup.Required()
}
func Readonly() Attr {
	return markup.Readonly()
}
func Hidden() Attr {
	return markup.Hidden()
}
func Autofocus() Attr {
	return markup.Autofocus()
}
func Multiple() Attr {
	return markup.Multiple()
}
func Open() Attr {
	return markup.Open()
}
func Defer() Attr {
	return markup.Defer()
}
func Async() Attr {
	return markup.Async()
}

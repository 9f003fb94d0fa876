package markup

import (
	"strconv"

	"github.com/vango-dev/starter/internal/errors"
)

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return Attribute("id", id) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return Attribute("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return Attribute("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr {
	if isBlank(key) {
		return Attr{}
	}
	return Attribute("data-"+key, value)
}

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return Attribute("role", role) }

// Aria creates an aria-* attribute.
func Aria(key, value string) Attr {
	if isBlank(key) {
		return Attr{}
	}
	return Attribute("aria-"+key, value)
}

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return Aria("label", label) }

// AriaHidden sets aria-hidden="true" when hidden, otherwise nothing.
func AriaHidden(hidden bool) Attr {
	if !hidden {
		return Attr{}
	}
	return Aria("hidden", "true")
}

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return Aria("expanded", strconv.FormatBool(expanded)) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return Aria("current", value) }

// TabIndex sets the tabindex attribute.
// It panics with E101 unless -1 <= index <= 32767.
func TabIndex(index int) Attr {
	if index < -1 || index > 32767 {
		panic(errors.New("E101").WithDetailf("tabindex %d is outside -1..32767", index))
	}
	return Attribute("tabindex", strconv.Itoa(index))
}

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return Attribute("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return Attribute("dir", dir) }

// Link and media attributes

// Href sets the href attribute.
func Href(url string) Attr { return Attribute("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return Attribute("src", url) }

// Alt sets the alt attribute. An empty alt is meaningful and is kept.
func Alt(text string) Attr { return Attribute("alt", text) }

// Target sets the target attribute.
func Target(target string) Attr { return Attribute("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return Attribute("rel", rel) }

// Width sets the width attribute.
func Width(px int) Attr { return Attribute("width", strconv.Itoa(px)) }

// Height sets the height attribute.
func Height(px int) Attr { return Attribute("height", strconv.Itoa(px)) }

// Document metadata attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return Attribute("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return Attribute("content", content) }

// Form attributes

// Action sets the action attribute.
func Action(url string) Attr { return Attribute("action", url) }

// Method sets the method attribute.
func Method(method string) Attr { return Attribute("method", method) }

// For sets the for attribute.
func For(id string) Attr { return Attribute("for", id) }

// Name sets the name attribute.
func Name(name string) Attr { return Attribute("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return Attribute("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return Attribute("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return Attribute("placeholder", text) }

// Boolean attributes. Each renders as its bare name.

// Disabled sets the disabled attribute.
func Disabled() Attr { return BoolAttr("disabled", true) }

// Checked sets the checked attribute.
func Checked() Attr { return BoolAttr("checked", true) }

// Selected sets the selected attribute.
func Selected() Attr { return BoolAttr("selected", true) }

// Required sets the required attribute.
func Required() Attr { return BoolAttr("required", true) }

// Readonly sets the readonly attribute.
func Readonly() Attr { return BoolAttr("readonly", true) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return BoolAttr("hidden", true) }

// Autofocus sets the autofocus attribute.
func Autofocus() Attr { return BoolAttr("autofocus", true) }

// Multiple sets the multiple attribute.
func Multiple() Attr { return BoolAttr("multiple", true) }

// Open sets the open attribute (details, dialog).
func Open() Attr { return BoolAttr("open", true) }

// Defer sets the defer attribute.
func Defer() Attr { return BoolAttr("defer", true) }

// Async sets the async attribute.
func Async() Attr { return BoolAttr("async", true) }

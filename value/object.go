package value

import "fmt"

// Object is the generic instance built for an object tag whose type is not registered.
// Every field of the payload ends up as an attribute.
type Object struct {
	ClassName  string
	Attributes *Map
}

func NewObject(className string) *Object {
	return &Object{ClassName: className, Attributes: NewMap()}
}

func (o *Object) SetAttribute(name string, v any) error {
	if o.Attributes == nil {
		o.Attributes = NewMap()
	}

	o.Attributes.Set(name, v)

	return nil
}

// Attribute returns the named attribute.
func (o *Object) Attribute(name string) (any, bool) {
	if o.Attributes == nil {
		return nil, false
	}

	return o.Attributes.Get(name)
}

// Exception is the generic error value built for an exception tag.
type Exception struct {
	ClassName  string
	Message    string
	Attributes *Map
}

func NewException(className, message string) *Exception {
	return &Exception{ClassName: className, Message: message, Attributes: NewMap()}
}

func (e *Exception) Error() string {
	if e.ClassName == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.ClassName, e.Message)
}

func (e *Exception) SetMessage(message string) {
	e.Message = message
}

func (e *Exception) SetAttribute(name string, v any) error {
	if e.Attributes == nil {
		e.Attributes = NewMap()
	}

	e.Attributes.Set(name, v)

	return nil
}

// String is a string carrying extra attributes, built when a string tag in
// mapping form holds more than the text itself.
type String struct {
	ClassName  string
	Text       string
	Attributes *Map
}

func (s *String) SetText(text string) {
	s.Text = text
}

func (s *String) SetAttribute(name string, v any) error {
	if s.Attributes == nil {
		s.Attributes = NewMap()
	}

	s.Attributes.Set(name, v)

	return nil
}

func (s *String) String() string {
	return s.Text
}

package config

import (
	"flag"
	"strconv"
)

var (
	_ flag.Getter = (*Bool)(nil)
	_ flag.Getter = (*Int)(nil)
)

// Bool is a boolean flag that remembers whether it was given. Setting it to
// the empty string clears it.
type Bool struct {
	value bool
	set   bool
}

func (b *Bool) Set(s string) error {
	if s == "" {
		*b = Bool{}
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b = Bool{value: v, set: true}
	return nil
}

func (b *Bool) String() string {
	if b == nil || !b.set {
		return ""
	}
	return strconv.FormatBool(b.value)
}

func (b *Bool) Get() any { return b.value }

func (b *Bool) IsBoolFlag() bool { return true }

// Ptr returns the given value, or nil if the flag was not given.
func (b *Bool) Ptr() *bool {
	if !b.set {
		return nil
	}
	v := b.value
	return &v
}

// Int is an integer flag that remembers whether it was given. Setting it to
// the empty string clears it.
type Int struct {
	value int
	set   bool
}

func (i *Int) Set(s string) error {
	if s == "" {
		*i = Int{}
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i = Int{value: v, set: true}
	return nil
}

func (i *Int) String() string {
	if i == nil || !i.set {
		return ""
	}
	return strconv.Itoa(i.value)
}

func (i *Int) Get() any { return i.value }

// Ptr returns the given value, or nil if the flag was not given.
func (i *Int) Ptr() *int {
	if !i.set {
		return nil
	}
	v := i.value
	return &v
}

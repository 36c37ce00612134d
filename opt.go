package smartenum

// A MemberOpt is a functional option describing a member being registered or injected.
type MemberOpt func(*memberOpts)

type memberOpts struct {
	value    int
	hasValue bool
	text     string
	code     string
}

// WithValue sets the member's value.
// Without it, the member is given the next value in its family.
func WithValue(v int) MemberOpt {
	return func(mo *memberOpts) {
		mo.value = v
		mo.hasValue = true
	}
}

// WithText sets the member's display text.
func WithText(text string) MemberOpt {
	return func(mo *memberOpts) {
		mo.text = text
	}
}

// WithCode sets the member's short code.
func WithCode(code string) MemberOpt {
	return func(mo *memberOpts) {
		mo.code = code
	}
}

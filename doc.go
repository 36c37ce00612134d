/*
Package smartenum provides enumerations whose members carry a number, a display text and a short code.

# Families

A family is declared with a tag type, a [Family] and the members registered with it.
The tag type is the family's identity: it implements [Kind] by handing out the family's one [Registry].

	type color struct{}

	func (color) Registry() *smartenum.Registry { return Colors.Registry() }

	type Color = smartenum.Member[color]

	var (
		Colors = smartenum.NewFamily[color]("Color")

		Red  = Colors.MustRegister("Red", smartenum.WithCode("R"))
		Blue = Colors.MustRegister("Blue", smartenum.WithCode("B"))
	)

A member registered without [WithValue] takes the value one past the family's highest,
or 0 if it is the first. Values are unique within a family;
[*Family.Register] returns a [*DuplicateValueError] rather than reuse one.

Families declared with [WithDeclarations] register their members the first time they are read,
and code outside the declaring package may add members later with [*Family.Inject].

# Comparing and finding members

[Member.Equal] compares a member to another member of its family, to an integer or to a string,
ignoring case for strings. [*Family.Resolve] finds the first member equal to its input.

# Encoding

Members encode to JSON and YAML as {"Text": …, "Code": …, "Value": …}
and decode from a string, a number or an object with any of those fields.
Decoding input that names no member yields the absent Member, never an error.
TOML and map keys use the text form from [Member.MarshalText].
*/
package smartenum

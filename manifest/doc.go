/*
Package manifest declares and extends smartenum families from YAML or TOML files.

A manifest names its family and lists members in order:

	family: Color
	members:
	  - text: Red
	    code: R
	    value: 1
	  - text: Blue
	    code: B

Members without a value take the next one in the family, exactly as [smartenum.WithValue] being omitted does.

[*Manifest.Apply] injects the members into an existing family;
[*Manifest.Declare] is suitable for [smartenum.WithDeclarations]
when a family is declared entirely from a manifest.
*/
package manifest

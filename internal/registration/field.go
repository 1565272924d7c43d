// Package registration holds the two-step signup wizard: field validators,
// the ordered record store, and the step state machine.
//
// Nothing in this package renders anything. The Bubble Tea adapter in
// internal/app gathers raw field strings, hands them to a Wizard, and draws
// whatever Result comes back.
package registration

// FieldKind identifies which validation rule applies to an input.
type FieldKind int

const (
	KindName FieldKind = iota
	KindEmail
	KindPassword
	KindDateOfBirth
	KindGender
)

func (k FieldKind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindEmail:
		return "email"
	case KindPassword:
		return "password"
	case KindDateOfBirth:
		return "dob"
	case KindGender:
		return "gender"
	default:
		return "unknown"
	}
}

// Field identifies one input of the registration draft, in display order.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldEmail
	FieldPassword
	FieldConfirmPassword
	FieldDateOfBirth
	FieldGender
	FieldComments
)

// Step1Fields are the inputs shown on the first screen.
var Step1Fields = []Field{FieldFirstName, FieldLastName, FieldEmail}

// Step2Fields are the inputs shown on the second screen.
var Step2Fields = []Field{FieldPassword, FieldConfirmPassword, FieldDateOfBirth, FieldGender, FieldComments}

// Label returns the human readable form label.
func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name"
	case FieldLastName:
		return "Last Name"
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm Password"
	case FieldDateOfBirth:
		return "Date of Birth"
	case FieldGender:
		return "Gender"
	case FieldComments:
		return "Comments"
	default:
		return "Unknown"
	}
}

func (f Field) String() string {
	switch f {
	case FieldFirstName:
		return "first_name"
	case FieldLastName:
		return "last_name"
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	case FieldConfirmPassword:
		return "confirm_password"
	case FieldDateOfBirth:
		return "dob"
	case FieldGender:
		return "gender"
	case FieldComments:
		return "comments"
	default:
		return "unknown"
	}
}

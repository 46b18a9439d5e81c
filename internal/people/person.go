package people

import (
	"strconv"

	apperrors "github.com/agbru/sampler/internal/errors"
)

// Person holds a name and a non-negative age.
type Person struct {
	firstName string
	lastName  string
	age       int
}

func negativeAge() error {
	return apperrors.ValidationError{Field: "age", Message: "Age cannot be negative"}
}

// NewPerson creates a Person.
//
// Parameters:
//   - first: The first name.
//   - last: The last name.
//   - age: The age in years. Must be non-negative.
//
// Returns:
//   - *Person: The new person.
//   - error: A ValidationError if age is negative.
func NewPerson(first, last string, age int) (*Person, error) {
	if age < 0 {
		return nil, negativeAge()
	}
	return &Person{firstName: first, lastName: last, age: age}, nil
}

// FullName joins the first and last names with a single space.
func (p *Person) FullName() string {
	return p.firstName + " " + p.lastName
}

// Age returns the age in years.
func (p *Person) Age() int { return p.age }

// SetAge updates the age. A negative value is rejected and the age is left
// unchanged.
func (p *Person) SetAge(age int) error {
	if age < 0 {
		return negativeAge()
	}
	p.age = age
	return nil
}

func (p *Person) String() string {
	return "Person: " + p.FullName() + ", Age: " + strconv.Itoa(p.age)
}

package people

import (
	"fmt"

	apperrors "github.com/agbru/sampler/internal/errors"
)

// DefaultMonthlySalary is applied when NewEmployee is not given a salary.
const DefaultMonthlySalary = 5000

// EmployeeOption configures an Employee at construction time.
type EmployeeOption func(*Employee)

// WithMonthlySalary sets the monthly salary. Zero is kept as zero.
func WithMonthlySalary(monthly float64) EmployeeOption {
	return func(e *Employee) { e.monthlySalary = monthly }
}

// Employee is a Person with employment details.
type Employee struct {
	Person
	employeeID    string
	jobTitle      string
	monthlySalary float64
}

// NewEmployee creates an Employee. Without WithMonthlySalary the salary is
// DefaultMonthlySalary.
//
// Parameters:
//   - first, last, age: Passed to NewPerson.
//   - id: The employee identifier.
//   - title: The job title.
//   - opts: Optional settings such as WithMonthlySalary.
//
// Returns:
//   - *Employee: The new employee.
//   - error: A ValidationError if age or the salary is negative.
func NewEmployee(first, last string, age int, id, title string, opts ...EmployeeOption) (*Employee, error) {
	p, err := NewPerson(first, last, age)
	if err != nil {
		return nil, err
	}
	e := &Employee{
		Person:        *p,
		employeeID:    id,
		jobTitle:      title,
		monthlySalary: DefaultMonthlySalary,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.monthlySalary < 0 {
		return nil, apperrors.ValidationError{Field: "monthlySalary", Message: "Salary cannot be negative"}
	}
	return e, nil
}

// EmployeeID returns the employee identifier.
func (e *Employee) EmployeeID() string { return e.employeeID }

// JobTitle returns the current job title.
func (e *Employee) JobTitle() string { return e.jobTitle }

// SetJobTitle replaces the job title.
func (e *Employee) SetJobTitle(title string) { e.jobTitle = title }

// MonthlySalary returns the monthly salary.
func (e *Employee) MonthlySalary() float64 { return e.monthlySalary }

// Info returns the identifier and title as one line.
func (e *Employee) Info() string {
	return "Employee ID: " + e.employeeID + ", Title: " + e.jobTitle
}

// AnnualSalary returns twelve times the monthly salary.
func (e *Employee) AnnualSalary() float64 {
	return e.monthlySalary * 12
}

func (e *Employee) String() string {
	return fmt.Sprintf("Employee: %s, ID: %s, Title: %s, Salary: $%g/month",
		e.FullName(), e.employeeID, e.jobTitle, e.monthlySalary)
}

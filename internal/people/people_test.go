package people

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/sampler/internal/errors"
)

func TestNewPerson(t *testing.T) {
	t.Parallel()

	t.Run("Valid person exposes its fields", func(t *testing.T) {
		t.Parallel()
		p, err := NewPerson("John", "Doe", 30)
		require.NoError(t, err)
		assert.Equal(t, "John Doe", p.FullName())
		assert.Equal(t, 30, p.Age())
		assert.Equal(t, "Person: John Doe, Age: 30", p.String())
	})

	t.Run("Zero age is allowed", func(t *testing.T) {
		t.Parallel()
		p, err := NewPerson("Baby", "Doe", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Age())
	})

	t.Run("Negative age is rejected", func(t *testing.T) {
		t.Parallel()
		p, err := NewPerson("John", "Doe", -1)
		assert.Nil(t, p)
		var validationErr apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "age", validationErr.Field)
		assert.Equal(t, "Age cannot be negative", validationErr.Message)
	})
}

func TestPerson_SetAge(t *testing.T) {
	t.Parallel()
	p, err := NewPerson("Jane", "Roe", 20)
	require.NoError(t, err)

	require.NoError(t, p.SetAge(21))
	assert.Equal(t, 21, p.Age())

	assert.Error(t, p.SetAge(-5))
	assert.Equal(t, 21, p.Age(), "age should be unchanged after a rejected update")
}

func TestNewEmployee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []EmployeeOption
		wantMonthly float64
		wantErr     bool
	}{
		{name: "explicit salary", opts: []EmployeeOption{WithMonthlySalary(6000)}, wantMonthly: 6000},
		{name: "omitted salary uses default", wantMonthly: DefaultMonthlySalary},
		{name: "explicit zero salary is kept", opts: []EmployeeOption{WithMonthlySalary(0)}, wantMonthly: 0},
		{name: "negative salary is rejected", opts: []EmployeeOption{WithMonthlySalary(-1)}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := NewEmployee("Jane", "Smith", 28, "E12345", "Software Developer", tt.opts...)
			if tt.wantErr {
				var validationErr apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "Salary cannot be negative", validationErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMonthly, e.MonthlySalary())
			assert.Equal(t, tt.wantMonthly*12, e.AnnualSalary())
		})
	}

	t.Run("Negative age is rejected through the embedded person", func(t *testing.T) {
		t.Parallel()
		_, err := NewEmployee("Jane", "Smith", -3, "E1", "Dev", WithMonthlySalary(100))
		var validationErr apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "age", validationErr.Field)
	})
}

func TestEmployee_Methods(t *testing.T) {
	t.Parallel()
	e, err := NewEmployee("Jane", "Smith", 28, "E12345", "Software Developer", WithMonthlySalary(6000))
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", e.FullName(), "promoted from Person")
	assert.Equal(t, "E12345", e.EmployeeID())
	assert.Equal(t, "Employee ID: E12345, Title: Software Developer", e.Info())
	assert.Equal(t, "Employee: Jane Smith, ID: E12345, Title: Software Developer, Salary: $6000/month", e.String())

	e.SetJobTitle("Senior Developer")
	assert.Equal(t, "Senior Developer", e.JobTitle())

	require.NoError(t, e.SetAge(29))
	assert.Equal(t, 29, e.Age())
}

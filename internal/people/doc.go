// Package people provides the Person and Employee value types. Employee
// embeds Person, so every Person method is available on an Employee.
package people

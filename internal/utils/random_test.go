package utils_test

import (
	"strings"
	"testing"

	"github.com/caremetrix/duty-roster/backend/internal/utils"
)

func TestGenerateUsernameFromName(t *testing.T) {
	username := utils.GenerateUsernameFromName("Maria", "Del Rosario")
	if !strings.HasPrefix(username, "mdelrosario") {
		t.Errorf("username = %q, want mdelrosario prefix", username)
	}
	// The suffix is 1 to 3 digits.
	suffix := strings.TrimPrefix(username, "mdelrosario")
	if len(suffix) < 1 || len(suffix) > 3 {
		t.Errorf("digit suffix = %q", suffix)
	}
}

func TestGenerateRandomPasswordLength(t *testing.T) {
	for _, n := range []int{1, 8, 12, 32} {
		if got := len(utils.GenerateRandomPassword(n)); got != n {
			t.Errorf("len(password) = %d, want %d", got, n)
		}
	}
}

func TestGenerateRandomOTPFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := utils.GenerateRandomOTP()
		if len(otp) != 6 {
			t.Fatalf("otp = %q, want 6 digits", otp)
		}
		for _, c := range otp {
			if c < '0' || c > '9' {
				t.Fatalf("otp = %q contains a non-digit", otp)
			}
		}
	}
}

func TestGenerateRandomEmployee(t *testing.T) {
	employee := utils.GenerateRandomEmployee(4)
	if employee.FirstName == "" || employee.LastName == "" {
		t.Errorf("employee name incomplete: %+v", employee)
	}
	if employee.DepartmentID != 4 {
		t.Errorf("department = %d, want 4", employee.DepartmentID)
	}
	if !employee.IsActive {
		t.Error("generated employee should be active")
	}
}

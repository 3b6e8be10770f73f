package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"Santos", "Reyes", "Cruz", "Bautista", "Ocampo", "Garcia", "Torres",
	"Flores", "Ramos", "Mendoza", "Castillo", "Villanueva", "Aquino",
	"Navarro", "Domingo", "Salazar", "Del Rosario", "Mercado", "Aguilar", "Rivera",
}

var commonGivenNames = []string{
	"Maria", "Jose", "Juan", "Ana", "Antonio", "Carmen", "Ricardo",
	"Teresa", "Eduardo", "Rosario", "Miguel", "Luz", "Andres", "Corazon",
	"Paolo", "Angelica", "Ramon", "Liza", "Dante", "Imelda",
	"Christian", "Grace", "Joshua", "Angel", "Mark", "Princess",
}

var commonPositions = []string{
	"Staff Nurse", "Nursing Aide", "Medical Technologist", "Radiologic Technologist",
	"Pharmacist", "Billing Clerk", "Admitting Clerk", "Ward Clerk",
	"Midwife", "Physical Therapist",
}

func GenerateRandomFilipinoName() (firstName, middleName, lastName string) {
	firstName = commonGivenNames[rand.Intn(len(commonGivenNames))]
	middleName = commonSurnames[rand.Intn(len(commonSurnames))]
	lastName = commonSurnames[rand.Intn(len(commonSurnames))]
	return firstName, middleName, lastName
}

func GenerateRandomEmployee(departmentID int64) *domain.Employee {
	first, middle, last := GenerateRandomFilipinoName()
	return &domain.Employee{
		FirstName:    first,
		MiddleName:   middle,
		LastName:     last,
		Position:     commonPositions[rand.Intn(len(commonPositions))],
		DepartmentID: departmentID,
		IsActive:     true,
	}
}

var roles = []domain.Role{
	domain.RoleStaff,
	domain.RoleManager,
	domain.RoleHR,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

// GenerateUsernameFromName lowercases the first name and appends the
// surname and a short numeric suffix, e.g. "mcruz42".
func GenerateUsernameFromName(firstName, lastName string) string {
	first := strings.ToLower(strings.TrimSpace(firstName))
	last := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lastName), " ", ""))

	username := ""
	if first != "" {
		username += first[:1]
	}
	username += last

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	first, _, last := GenerateRandomFilipinoName()
	username := GenerateUsernameFromName(first, last)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     first + " " + last,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
		IsActive:     true,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

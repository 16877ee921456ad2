// Command seed provisions a development database with a baseline org:
// departments, one account per role, employee records and a few leave and
// attendance rows. Running it twice against the same database will fail on
// unique constraints; start from a clean schema.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/ems-backend-go/internal/config"
	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

const seedPassword = "Password123!"

type seedAccount struct {
	id    string
	email string
	role  account.Role
}

type seedEmployee struct {
	id          string
	accountID   string
	code        string
	firstName   string
	lastName    string
	email       string
	designation string
	department  string
	managerID   string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing seed password: ", err)
	}

	departments := map[string]string{
		"Engineering":     uuid.NewString(),
		"Human Resources": uuid.NewString(),
		"Sales":           uuid.NewString(),
		"Finance":         uuid.NewString(),
	}

	for name, id := range departments {
		_, err := db.Exec(ctx,
			`INSERT INTO departments (id, name, description) VALUES ($1, $2, $3)`,
			id, name, fmt.Sprintf("%s department", name),
		)
		if err != nil {
			log.Fatal("Error seeding department: ", err)
		}
	}

	accounts := []seedAccount{
		{id: uuid.NewString(), email: "admin@example.com", role: account.RoleAdmin},
		{id: uuid.NewString(), email: "hr@example.com", role: account.RoleHR},
		{id: uuid.NewString(), email: "manager@example.com", role: account.RoleManager},
		{id: uuid.NewString(), email: "employee@example.com", role: account.RoleEmployee},
	}

	for _, a := range accounts {
		_, err := db.Exec(ctx,
			`INSERT INTO accounts (id, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
			a.id, a.email, string(hash), string(a.role),
		)
		if err != nil {
			log.Fatal("Error seeding account: ", err)
		}
	}

	managerID := uuid.NewString()

	employees := []seedEmployee{
		{
			id:          uuid.NewString(),
			accountID:   accounts[0].id,
			code:        "EMP-0001",
			firstName:   "Alice",
			lastName:    "Admin",
			email:       "admin@example.com",
			designation: "Head of Operations",
			department:  departments["Engineering"],
		},
		{
			id:          uuid.NewString(),
			accountID:   accounts[1].id,
			code:        "EMP-0002",
			firstName:   "Harry",
			lastName:    "Reyes",
			email:       "hr@example.com",
			designation: "HR Generalist",
			department:  departments["Human Resources"],
		},
		{
			id:          managerID,
			accountID:   accounts[2].id,
			code:        "EMP-0003",
			firstName:   "Maya",
			lastName:    "Nguyen",
			email:       "manager@example.com",
			designation: "Engineering Manager",
			department:  departments["Engineering"],
		},
		{
			id:          uuid.NewString(),
			accountID:   accounts[3].id,
			code:        "EMP-0004",
			firstName:   "Evan",
			lastName:    "Okafor",
			email:       "employee@example.com",
			designation: "Software Engineer",
			department:  departments["Engineering"],
			managerID:   managerID,
		},
	}

	joined := time.Now().UTC().AddDate(-1, 0, 0).Format("2006-01-02")

	for _, e := range employees {
		var mgr interface{}
		if e.managerID != "" {
			mgr = e.managerID
		}

		_, err := db.Exec(ctx,
			`INSERT INTO employees (
				id, account_id, employee_code, first_name, last_name, email,
				designation, status, date_of_joining, department_id, manager_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7, 'ACTIVE', $8, $9, $10)`,
			e.id, e.accountID, e.code, e.firstName, e.lastName, e.email,
			e.designation, joined, e.department, mgr,
		)
		if err != nil {
			log.Fatal("Error seeding employee: ", err)
		}
	}

	engineer := employees[3]

	start := time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02")
	end := time.Now().UTC().AddDate(0, 0, 18).Format("2006-01-02")

	_, err = db.Exec(ctx,
		`INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, reason, status)
		 VALUES ($1, $2, 'annual', $3, $4, 'Family trip', 'PENDING')`,
		uuid.NewString(), engineer.id, start, end,
	)
	if err != nil {
		log.Fatal("Error seeding leave request: ", err)
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	checkIn := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)

	_, err = db.Exec(ctx,
		`INSERT INTO attendance_records (id, employee_id, date, check_in_time, check_out_time)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), engineer.id, checkIn.Format("2006-01-02"), checkIn, checkOut,
	)
	if err != nil {
		log.Fatal("Error seeding attendance record: ", err)
	}

	fmt.Println("Seed complete. All accounts use password:", seedPassword)
}

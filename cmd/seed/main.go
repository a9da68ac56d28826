// seed loads development sample data; run via go run ./cmd/seed.
// Idempotent: inserts are skipped if john.doe@example.com already exists.
// -clean wipes all rows first (asks for confirmation unless -force is set),
// -status prints row counts.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"apidb/internal/config"
	"apidb/internal/db"
	postdomain "apidb/internal/post/domain"
	postrepo "apidb/internal/post/repository"
	productdomain "apidb/internal/product/domain"
	productrepo "apidb/internal/product/repository"
	"apidb/internal/security"
	userdomain "apidb/internal/user/domain"
	userrepo "apidb/internal/user/repository"
)

const sentinelEmail = "john.doe@example.com"

type sampleUser struct {
	name  string
	email string
}

var sampleUsers = []sampleUser{
	{"John Doe", "john.doe@example.com"},
	{"Jane Smith", "jane.smith@example.com"},
	{"Bob Johnson", "bob.johnson@example.com"},
	{"Alice Brown", "alice.brown@example.com"},
	{"Charlie Wilson", "charlie.wilson@example.com"},
}

type sampleProduct struct {
	name        string
	description string
	price       string
	quantity    int
}

var sampleProducts = []sampleProduct{
	{"MacBook Pro 16 inch", "Apple MacBook Pro with M3 chip, 16GB RAM, 512GB SSD", "2499.00", 25},
	{"Dell XPS 13", "Ultra-portable laptop with Intel i7, 16GB RAM, 1TB SSD", "1299.00", 40},
	{"iPhone 15 Pro", "Latest iPhone with A17 Pro chip, 128GB storage, Titanium design", "999.00", 75},
	{"Samsung Galaxy S24", "Android flagship with 256GB storage and advanced camera system", "899.00", 60},
	{"Sony WH-1000XM5", "Premium noise-canceling wireless headphones", "399.00", 120},
}

type samplePost struct {
	title   string
	content string
	author  int // index into sampleUsers
}

var samplePosts = []samplePost{
	{"My Journey with FastAPI", "John shares his experience building scalable APIs with FastAPI and the lessons learned along the way", 0},
	{"Designing User-Centric Databases", "Jane discusses her approach to creating database schemas that prioritize user experience and performance", 1},
	{"Advanced Python Patterns I Use Daily", "Bob reveals the Python techniques and patterns that have transformed his development workflow", 2},
	{"Building Modern Web Apps: My Story", "Alice walks through her process of creating full-stack applications using cutting-edge technologies", 3},
	{"How I Secure My APIs", "Charlie explains his comprehensive approach to API security and the tools he relies on", 0},
}

func main() {
	clean := flag.Bool("clean", false, "Delete all rows before seeding (asks for confirmation)")
	force := flag.Bool("force", false, "Skip the confirmation prompt")
	status := flag.Bool("status", false, "Print row counts and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conn, err := db.Open(cfg.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	log.Printf("Connected to %s@%s:%d/%s", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)

	if *status {
		printStatus(ctx, conn)
		return
	}

	users := userrepo.NewMySQLRepository(conn)
	posts := postrepo.NewMySQLRepository(conn)
	products := productrepo.NewMySQLRepository(conn)

	if *clean {
		if err := cleanDB(ctx, conn, users, *force); err != nil {
			log.Fatalf("clean: %v", err)
		}
	} else {
		existing, err := users.GetByEmail(ctx, sentinelEmail)
		if err != nil {
			log.Fatalf("seed check: %v", err)
		}
		if existing != nil {
			log.Printf("Seed already applied (%s exists). Skipping.", sentinelEmail)
			return
		}
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	userIDs := make([]int64, len(sampleUsers))
	for i, su := range sampleUsers {
		// Throwaway random password; sample accounts are not for logging in.
		hash, err := hasher.Hash([]byte(uuid.NewString()))
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		u := &userdomain.User{Name: su.name, Email: su.email, PasswordHash: hash}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create user %s: %v", su.email, err)
		}
		userIDs[i] = u.ID
	}

	for _, sp := range sampleProducts {
		p := &productdomain.Product{
			Name:        sp.name,
			Description: sp.description,
			Price:       decimal.RequireFromString(sp.price),
			Quantity:    sp.quantity,
		}
		if err := products.Create(ctx, p); err != nil {
			log.Fatalf("create product %s: %v", sp.name, err)
		}
	}

	for _, sp := range samplePosts {
		p := &postdomain.Post{Title: sp.title, Content: sp.content, UserID: userIDs[sp.author]}
		if err := posts.Create(ctx, p); err != nil {
			log.Fatalf("create post %s: %v", sp.title, err)
		}
	}

	log.Printf("Seed completed: %d users, %d products, %d posts.",
		len(sampleUsers), len(sampleProducts), len(samplePosts))
}

func cleanDB(ctx context.Context, conn *sql.DB, users userrepo.Repository, force bool) error {
	existing, err := users.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Cleaning database with %d existing users; this deletes all data.", len(existing))
	} else {
		log.Print("No existing data found; proceeding with initialization.")
	}

	if !force && !confirm("Are you sure you want to proceed? (yes/no): ") {
		return fmt.Errorf("cancelled")
	}

	// Posts reference users, so they go first.
	for _, table := range []string{"posts", "users", "products", "audit_logs"} {
		if _, err := conn.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	log.Print("Database cleaned.")
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y":
		return true
	}
	return false
}

func printStatus(ctx context.Context, conn *sql.DB) {
	for _, table := range []string{"users", "products", "posts"} {
		var n int
		if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			log.Printf("%s: unavailable (%v)", table, err)
			continue
		}
		log.Printf("%s: %d rows", table, n)
	}
}

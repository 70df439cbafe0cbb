package main

import (
	"context"
	"log"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// Inserts a demo data set for local development. Users are keyed by email, so
// re-running the script is safe.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Board{},
		&model.BoardUser{},
		&model.Column{},
		&model.Task{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	boards := repository.NewBoardRepository(gormDB)
	columns := repository.NewColumnRepository(gormDB)
	tasks := repository.NewTaskRepository(gormDB)
	comments := repository.NewCommentRepository(gormDB)

	alice := seedUser(ctx, users, "Alice", "alice@example.com", "password123", model.RoleAdmin)
	bob := seedUser(ctx, users, "Bob", "bob@example.com", "password123", model.RoleEditor)
	carol := seedUser(ctx, users, "Carol", "carol@example.com", "password123", model.RoleViewer)

	board := &model.Board{Title: "Product Launch", OwnerID: alice.ID}
	if err := boards.Create(ctx, board); err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}
	for _, collaborator := range []*model.User{bob, carol} {
		link := &model.BoardUser{BoardID: board.ID, UserID: collaborator.ID}
		if err := boards.CreateCollaborator(ctx, link); err != nil {
			log.Printf("Skipping collaborator %s: %v", collaborator.Email, err)
		}
	}

	names := []string{"Todo", "In Progress", "Done"}
	cols := make([]*model.Column, 0, len(names))
	for i, name := range names {
		col := &model.Column{Name: name, BoardID: board.ID, OrderIndex: i}
		if err := columns.Create(ctx, col); err != nil {
			log.Fatalf("Failed to create column %q: %v", name, err)
		}
		cols = append(cols, col)
	}

	task := &model.Task{
		Title:       "Write launch announcement",
		Description: "Draft the blog post and release notes.",
		ColumnID:    cols[0].ID,
		AssigneeID:  &bob.ID,
		Priority:    model.PriorityHigh,
	}
	if err := tasks.Create(ctx, task); err != nil {
		log.Fatalf("Failed to create task: %v", err)
	}

	comment := &model.Comment{
		Content: "First draft is in the shared folder.",
		UserID:  bob.ID,
		TaskID:  task.ID,
	}
	if err := comments.Create(ctx, comment); err != nil {
		log.Fatalf("Failed to create comment: %v", err)
	}

	log.Println("Seed completed")
}

func seedUser(ctx context.Context, repo repository.UserRepository, name, email, password, role string) *model.User {
	if existing, err := repo.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Printf("User %s already exists, skipping", email)
		return existing
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password for %s: %v", email, err)
	}
	user := &model.User{Name: name, Email: email, Password: digest, Role: role}
	if err := repo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user %s: %v", email, err)
	}
	log.Printf("Created user %s", email)
	return user
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/repository/unitofwork"

	"golang.org/x/crypto/bcrypt"
)

type demoUser struct {
	Email    string
	FullName string
	Role     entity.UserRole
}

var demoUsers = []demoUser{
	{Email: "admin@cloud-console.local", FullName: "Console Admin", Role: entity.UserRoleAdmin},
	{Email: "dev@cloud-console.local", FullName: "Demo Developer", Role: entity.UserRoleUser},
}

type Summary struct {
	Users      int
	Skipped    int
	Functions  int
	Lambdas    int
	Executions int
	Queues     int
	Buckets    int
	Containers int
}

// Seed writes one demo tenant per entry in demoUsers. Users that already
// exist are skipped along with everything they would own.
func Seed(ctx context.Context, repos unitofwork.RepositorySet, password string, now time.Time) (Summary, error) {
	var s Summary

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return s, fmt.Errorf("hash seed password: %w", err)
	}
	hashed := string(hash)

	for _, du := range demoUsers {
		existing, err := repos.UserRepository().FindByEmail(ctx, du.Email)
		if err != nil {
			return s, err
		}
		if existing != nil {
			s.Skipped++
			continue
		}

		user := &entity.User{Email: du.Email, FullName: du.FullName, PasswordHash: &hashed, Role: du.Role}
		if err := repos.UserRepository().Create(ctx, user); err != nil {
			return s, err
		}
		s.Users++

		if err := seedTenant(ctx, repos, user, now, &s); err != nil {
			return s, err
		}
	}
	return s, nil
}

func seedTenant(ctx context.Context, repos unitofwork.RepositorySet, user *entity.User, now time.Time, s *Summary) error {
	fn := &entity.AIFunction{
		UserId: user.Id,
		Name:   "summarize-logs",
		Model:  "llama3",
		Prompt: "Summarize the following log excerpt in three bullet points.",
	}
	if err := repos.AIFunctionRepository().Create(ctx, fn); err != nil {
		return err
	}
	s.Functions++

	lambda := &entity.Lambda{
		UserId:         user.Id,
		Name:           "thumbnail",
		Runtime:        "go1.x",
		Handler:        "main",
		Environment:    map[string]string{"STAGE": "demo", "MAX_WIDTH": "640"},
		MemoryMB:       256,
		TimeoutSeconds: 15,
	}
	if err := repos.LambdaRepository().Create(ctx, lambda); err != nil {
		return err
	}
	s.Lambdas++

	statuses := []entity.ExecutionStatus{entity.ExecutionStatusSuccess, entity.ExecutionStatusError, entity.ExecutionStatusTimeout}
	for i, status := range statuses {
		input, _ := json.Marshal(map[string]any{"object": fmt.Sprintf("uploads/%d.png", i)})
		execution := &entity.LambdaExecution{
			LambdaId:   lambda.Id,
			Status:     status,
			Input:      input,
			DurationMs: int64(120 * (i + 1)),
			Timestamp:  now.Add(-time.Duration(len(statuses)-i) * time.Minute),
		}
		if err := repos.LambdaExecutionRepository().Create(ctx, execution); err != nil {
			return err
		}
		s.Executions++
	}

	for _, name := range []string{"orders", "emails"} {
		if err := repos.QueueRepository().Create(ctx, &entity.Queue{UserId: user.Id, QueueName: name, VisibilityTimeoutSeconds: 30}); err != nil {
			return err
		}
		s.Queues++
	}

	bucket := &entity.Bucket{
		OwnerEmail: user.Email,
		Name:       fmt.Sprintf("assets-%s", user.Id.String()[:8]),
		Region:     "eu-west-1",
	}
	if err := repos.BucketRepository().Create(ctx, bucket); err != nil {
		return err
	}
	s.Buckets++

	for i, status := range []entity.ContainerStatus{entity.ContainerStatusRunning, entity.ContainerStatusStopped} {
		c := &entity.Container{
			OwnerEmail: user.Email,
			InstanceId: fmt.Sprintf("i-%s-%d", user.Id.String()[:8], i),
			Image:      "nginx:1.27",
			Status:     status,
		}
		if err := repos.ContainerRepository().Create(ctx, c); err != nil {
			return err
		}
		s.Containers++
	}
	return nil
}

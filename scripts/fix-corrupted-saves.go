package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/repositories/saves"
)

const keyPattern = "save:slot:*"

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	defer client.Close()
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := saves.NewRedis(&saves.RedisConfig{Client: client})
	if err != nil {
		log.Fatal("Failed to create save repository:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted save slots...")

	iter := client.Scan(ctx, 0, keyPattern, 0).Iterator()

	var corrupted []int
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		slot, err := strconv.Atoi(strings.TrimPrefix(key, strings.TrimSuffix(keyPattern, "*")))
		if err != nil {
			fmt.Printf("Skipping unexpected key %s\n", key)
			continue
		}
		checkedCount++

		_, err = repo.Load(ctx, saves.LoadInput{Slot: slot})
		switch {
		case err == nil:
		case errors.IsDataLoss(err):
			fmt.Printf("✗ Corrupted save in slot %d\n", slot)
			corrupted = append(corrupted, slot)
		default:
			fmt.Printf("Error reading slot %d: %v\n", slot, err)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d slots, found %d corrupted\n", checkedCount, len(corrupted))

	if len(corrupted) == 0 {
		fmt.Println("No corrupted saves found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these corrupted saves? (yes/no): ")
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')

	if strings.TrimSpace(response) != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, slot := range corrupted {
		if _, err := repo.Delete(ctx, saves.DeleteInput{Slot: slot}); err != nil {
			fmt.Printf("Failed to delete slot %d: %v\n", slot, err)
		} else {
			fmt.Printf("Deleted slot %d\n", slot)
		}
	}
	fmt.Println("\nCleanup complete!")
}

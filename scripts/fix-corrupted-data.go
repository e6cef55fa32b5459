package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
)

const (
	shipKeyPrefix    = "ship:"
	ownerIndexPrefix = "ship:owner:"
	allShipsKey      = "ship:index"
)

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
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted ship data...")

	iter := client.Scan(ctx, 0, shipKeyPrefix+"*", 0).Iterator()

	var corruptedKeys []string
	repairs := make(map[string]*swn.Ship)
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if key == allShipsKey || strings.HasPrefix(key, ownerIndexPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var ship swn.Ship
		if err := json.Unmarshal([]byte(data), &ship); err != nil || ship.ID == "" {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if problems := clampResources(&ship); len(problems) > 0 {
			fmt.Printf("✗ Out of range in %s: %s\n", key, strings.Join(problems, ", "))
			repairs[key] = &ship
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	dangling, err := danglingIndexEntries(ctx, client)
	if err != nil {
		log.Fatal("Error checking ship index:", err)
	}

	fmt.Printf("\nChecked %d ships: %d corrupted, %d out of range, %d dangling index entries\n",
		checkedCount, len(corruptedKeys), len(repairs), len(dangling))

	if len(corruptedKeys) == 0 && len(repairs) == 0 && len(dangling) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Print("\nDelete corrupted entries, clamp resources, and prune the index? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input aborts

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Printf("Deleted %s\n", key)
	}

	for key, ship := range repairs {
		data, err := json.Marshal(ship)
		if err != nil {
			fmt.Printf("Failed to encode %s: %v\n", key, err)
			continue
		}
		if err := client.Set(ctx, key, data, 0).Err(); err != nil {
			fmt.Printf("Failed to repair %s: %v\n", key, err)
			continue
		}
		fmt.Printf("Repaired %s\n", key)
	}

	for _, id := range dangling {
		if err := client.SRem(ctx, allShipsKey, id).Err(); err != nil {
			fmt.Printf("Failed to prune %s from index: %v\n", id, err)
			continue
		}
		fmt.Printf("Pruned %s from index\n", id)
	}

	fmt.Println("\nCleanup complete!")
}

// clampResources forces every resource back into [0, max] and names the
// ones that were out of range
func clampResources(ship *swn.Ship) []string {
	var problems []string
	fields := map[string]*swn.Resource{
		"hp":           &ship.HP,
		"fuel":         &ship.Fuel,
		"life_support": &ship.LifeSupportDays,
		"power":        &ship.Power,
		"mass":         &ship.Mass,
		"hardpoints":   &ship.Hardpoints,
	}
	for name, r := range fields {
		if clamped := r.Clamped(); clamped != *r {
			problems = append(problems, fmt.Sprintf("%s %d/%d", name, r.Value, r.Max))
			*r = clamped
		}
	}

	drive := swn.Resource{Value: ship.SpikeDrive.Value, Max: ship.SpikeDrive.Max}
	if clamped := drive.Clamped(); clamped != drive {
		problems = append(problems, fmt.Sprintf("spike_drive %d/%d", drive.Value, drive.Max))
		ship.SpikeDrive.Value, ship.SpikeDrive.Max = clamped.Value, clamped.Max
	}

	return problems
}

func danglingIndexEntries(ctx context.Context, client *redis.Client) ([]string, error) {
	ids, err := client.SMembers(ctx, allShipsKey).Result()
	if err != nil {
		return nil, err
	}

	var dangling []string
	for _, id := range ids {
		n, err := client.Exists(ctx, shipKeyPrefix+id).Result()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			dangling = append(dangling, id)
		}
	}
	return dangling, nil
}

package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"pitchside/internal/database"
	"pitchside/internal/league"
	"pitchside/internal/schedule"
)

var positions = []string{"Goalkeeper", "Defender", "Midfielder", "Forward", "Winger"}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "pitchside-seed.db",
		"MIGRATIONS_DIR": "./migrations",
		"GUILD_ID":       "seed-guild",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			config[key] = value
		}
	}
	// Optional Turso target for seeding a remote database.
	config["TURSO_PRIMARY_URL"] = os.Getenv("TURSO_PRIMARY_URL")
	config["TURSO_AUTH_TOKEN"] = os.Getenv("TURSO_AUTH_TOKEN")
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()
	guildID := cfg["GUILD_ID"]

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	leagueStore := league.New(db)

	// Players first, everything else hangs off them.
	const numPlayers = 40
	playerIDs := make([]string, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		id := fmt.Sprintf("seed-player-%d", i+1)
		err := leagueStore.UpsertPlayer(league.Player{
			ID:           id,
			GuildID:      guildID,
			Name:         randomdata.FullName(randomdata.RandomGender),
			Position:     positions[rand.Intn(len(positions))],
			JerseyNumber: rand.Intn(98) + 1,
			RegisteredAt: time.Now().Add(-time.Duration(rand.Intn(180*24)) * time.Hour).Unix(),
		})
		if err != nil {
			log.Fatalf("Failed to insert player %s: %s", id, err)
		}
		playerIDs = append(playerIDs, id)
	}
	log.Info("Seeded players.", "count", numPlayers)

	// Eight teams of five, captained by their first player.
	const numTeams = 8
	teamIDs := make([]string, 0, numTeams)
	for i := 0; i < numTeams; i++ {
		roster := playerIDs[i*5 : (i+1)*5]
		team := league.Team{
			ID:        fmt.Sprintf("seed-team-%d", i+1),
			GuildID:   guildID,
			Name:      randomdata.City() + " " + randomdata.Noun(),
			Tag:       strings.ToUpper(randomdata.Letters(3)),
			CaptainID: roster[0],
			CreatedAt: time.Now().Unix(),
		}
		if err := leagueStore.CreateTeam(team); err != nil {
			log.Fatalf("Failed to insert team %s: %s", team.Name, err)
		}
		for _, playerID := range roster {
			if err := leagueStore.AddToRoster(team.ID, playerID); err != nil {
				log.Fatalf("Failed to add %s to roster: %s", playerID, err)
			}
		}
		teamIDs = append(teamIDs, team.ID)
	}
	log.Info("Seeded teams and rosters.", "count", numTeams)

	// Historical games go in raw, batched, with results already recorded.
	const batchSize = 100
	const numGames = 1000

	log.Info("Preparing to insert dummy games...", "total", numGames, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*11) // 11 columns per game

	for i := 0; i < numGames; i++ {
		home := teamIDs[rand.Intn(len(teamIDs))]
		away := teamIDs[rand.Intn(len(teamIDs))]
		for away == home {
			away = teamIDs[rand.Intn(len(teamIDs))]
		}
		kickoff := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			guildID,
			home,
			away,
			kickoff.Unix(),
			playerIDs[rand.Intn(len(playerIDs))],
			kickoff.Add(-72*time.Hour).Unix(),
			rand.Intn(6),
			rand.Intn(6),
			schedule.StatusCompleted,
			kickoff.Add(-time.Hour).Unix(),
		)

		if (i+1)%batchSize == 0 || (i+1) == numGames {
			stmt := fmt.Sprintf(`
				INSERT INTO scheduled_games (id, guild_id, home_team_id, away_team_id, start_time,
					created_by, created_at, home_score, away_score, processing_status, reminded_at)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*11)
			log.Info("Inserted batch", "completed", i+1, "total", numGames)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	// A handful of upcoming fixtures so the schedule dashboard has content.
	gameStore := schedule.New(db)
	for i := 0; i < 5; i++ {
		home := teamIDs[rand.Intn(len(teamIDs))]
		away := teamIDs[rand.Intn(len(teamIDs))]
		for away == home {
			away = teamIDs[rand.Intn(len(teamIDs))]
		}
		err := gameStore.CreateGame(schedule.Game{
			ID:         uuid.NewString(),
			GuildID:    guildID,
			HomeTeamID: home,
			AwayTeamID: away,
			StartTime:  time.Now().Add(time.Duration(i+1) * 24 * time.Hour).Unix(),
			CreatedBy:  playerIDs[0],
			CreatedAt:  time.Now().Unix(),
		})
		if err != nil {
			log.Fatalf("Failed to insert upcoming game: %s", err)
		}
	}

	duration := time.Since(startTime)
	log.Info("Successfully seeded the database.", "games", numGames, "duration", duration)
}

// Package seed populates the database with demo users and analysis
// snapshots computed from synthetic vendor batches. The normalized batches
// themselves are never stored, matching the production data lifecycle.
package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/trainwell/vitals-api/internal/analyzer"
	"github.com/trainwell/vitals-api/internal/domain"
	"gorm.io/gorm"
)

const (
	// batchDays is the length of the synthetic history per user.
	batchDays = 28
	// snapshotDays is how many trailing days get a stored snapshot.
	snapshotDays = 14
	// windowDays is the trailing window the battery runs over per snapshot.
	windowDays = 14
)

// Run seeds the database with sample users and snapshots. Safe to call
// multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.AnalysisSnapshot{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam", TargetSleepMinutes: 480},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", TargetSleepMinutes: 450},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", TargetSleepMinutes: 510},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i, user := range users {
		// Stagger baselines so the demo users land in different bands.
		baseline := profile{
			sleepHours: 6.7 + 0.6*float64(i),
			hrv:        42 + 8*float64(i),
			restingHR:  58 - 3*float64(i),
			activity:   65 + 7*float64(i),
		}
		if err := seedSnapshotsForUser(db, user, baseline, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

type profile struct {
	sleepHours float64
	hrv        float64
	restingHR  float64
	activity   float64
}

func seedSnapshotsForUser(db *gorm.DB, user domain.User, base profile, rng *rand.Rand) error {
	batch := syntheticBatch(base, rng)

	sleepAnalyzer := analyzer.NewSleepAnalyzer()
	readinessAnalyzer := analyzer.NewReadinessAnalyzer()
	recoveryAnalyzer := analyzer.NewRecoveryAnalyzer()

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for i := 0; i < snapshotDays; i++ {
		day := today.AddDate(0, 0, -i)
		window := windowedBatch(batch, day.AddDate(0, 0, -windowDays), day)
		if len(window.Sleep) == 0 {
			continue
		}

		readiness := readinessAnalyzer.CalculateTrainingReadiness(analyzer.ReadinessInput{
			Sleep:     window.Sleep,
			Readiness: window.Readiness,
			HRV:       window.HRV,
			Activity:  window.Activity,
		})
		recovery := recoveryAnalyzer.CalculateRecovery(analyzer.RecoveryInput{
			Readiness: window.Readiness,
			Sleep:     window.Sleep,
			HRV:       window.HRV,
			Activity:  window.Activity,
		})
		lastNight := sleepAnalyzer.ScoreSleepQuality(window.Sleep[len(window.Sleep)-1])

		factorsJSON, err := json.Marshal(map[string]map[string]int{
			"readiness": readiness.Factors,
			"recovery":  recovery.Factors,
		})
		if err != nil {
			return fmt.Errorf("failed to encode factors: %w", err)
		}

		snapshot := domain.AnalysisSnapshot{
			ID:             uuid.New(),
			UserID:         user.ID,
			Day:            day,
			Source:         domain.SourceOura,
			ReadinessScore: readiness.Score,
			RecoveryScore:  recovery.Score,
			SleepScore:     lastNight.Overall,
			Recommendation: readiness.Recommendation,
			Status:         recovery.Status,
			FactorsJSON:    string(factorsJSON),
		}

		err = db.Where("user_id = ? AND day = ? AND source = ?", user.ID, day, domain.SourceOura).
			FirstOrCreate(&snapshot).Error
		if err != nil {
			return fmt.Errorf("failed to create snapshot for %s on %s: %w", user.ID, day.Format("2006-01-02"), err)
		}
	}

	return nil
}

// syntheticBatch builds batchDays of correlated sleep, HRV, activity and
// readiness history around a user profile.
func syntheticBatch(base profile, rng *rand.Rand) domain.HealthBatch {
	var batch domain.HealthBatch

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for i := batchDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)

		sleepHours := base.sleepHours + rng.Float64()*1.4 - 0.7
		total := int(sleepHours * 3600)
		bedtime := day.Add(-time.Duration(60+rng.Intn(90)) * time.Minute)
		latency := (8 + rng.Intn(20)) * 60
		hrv := base.hrv + rng.Float64()*12 - 6
		lowestHR := base.restingHR - 4 + rng.Float64()*6

		batch.Sleep = append(batch.Sleep, domain.SleepSession{
			Source:             domain.SourceOura,
			Day:                day,
			BedtimeStart:       bedtime,
			BedtimeEnd:         bedtime.Add(time.Duration(total+latency) * time.Second),
			TotalSleepDuration: total,
			DeepSleepDuration:  int(float64(total) * (0.14 + rng.Float64()*0.08)),
			LightSleepDuration: int(float64(total) * 0.52),
			REMSleepDuration:   int(float64(total) * (0.17 + rng.Float64()*0.08)),
			AwakeDuration:      (10 + rng.Intn(30)) * 60,
			Efficiency:         85 + rng.Float64()*12,
			AverageHRV:         &hrv,
			LowestHeartRate:    &lowestHR,
			Latency:            &latency,
		})

		batch.HRV = append(batch.HRV, domain.HRVSample{
			Source:    domain.SourceOura,
			Timestamp: day.Add(4 * time.Hour),
			HRV:       hrv,
		})

		batch.Activity = append(batch.Activity, domain.DailyActivity{
			Source:         domain.SourceOura,
			Day:            day,
			Score:          base.activity + rng.Float64()*20 - 10,
			Steps:          6000 + rng.Intn(8000),
			ActiveCalories: 350 + rng.Intn(400),
			TotalCalories:  2100 + rng.Intn(600),
		})

		batch.Readiness = append(batch.Readiness, domain.DailyReadiness{
			Source: domain.SourceOura,
			Day:    day,
			Score:  60 + rng.Float64()*30,
		})
	}

	return batch
}

// windowedBatch slices the batch down to records inside (from, to].
func windowedBatch(batch domain.HealthBatch, from, to time.Time) domain.HealthBatch {
	var out domain.HealthBatch
	for _, s := range batch.Sleep {
		if s.Day.After(from) && !s.Day.After(to) {
			out.Sleep = append(out.Sleep, s)
		}
	}
	for _, r := range batch.Readiness {
		if r.Day.After(from) && !r.Day.After(to) {
			out.Readiness = append(out.Readiness, r)
		}
	}
	for _, a := range batch.Activity {
		if a.Day.After(from) && !a.Day.After(to) {
			out.Activity = append(out.Activity, a)
		}
	}
	for _, h := range batch.HRV {
		if h.Timestamp.After(from) && !h.Timestamp.After(to.AddDate(0, 0, 1)) {
			out.HRV = append(out.HRV, h)
		}
	}
	return out
}

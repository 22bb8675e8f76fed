package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/google/uuid"
)

func intPtr(v int) *int                 { return &v }
func floatPtr(v float64) *float64       { return &v }
func strPtr(v string) *string           { return &v }
func noisePtr(v NoiseLevel) *NoiseLevel { return &v }

func validEMA() EMA {
	return EMA{
		ID:            "ema-1",
		UserID:        uuid.New(),
		Timestamp:     time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		Anger:         1,
		Anxiety:       2,
		Sadness:       1,
		Happiness:     4,
		SleepHours:    7.5,
		SleepQuality:  4,
		AlcoholUse:    AlcoholNone,
		SubstanceType: SubstanceNone,
	}
}

func validSession() GameSession {
	return GameSession{
		ID:                      "s-1",
		UserID:                  uuid.New(),
		Timestamp:               time.Date(2024, 1, 15, 8, 5, 0, 0, time.UTC),
		GameType:                GameGoNoGo,
		DifficultyLevel:         2,
		Score:                   85,
		Accuracy:                0.92,
		ReactionTimeMs:          intPtr(420),
		ReactionTimeVariability: floatPtr(65.5),
		OmissionErrors:          1,
		EMAID:                   strPtr("ema-1"),
		IsBaselineSession:       true,
	}
}

func TestEMA_IsBaseline(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*EMA)
		want   bool
	}{
		{"rested and calm", func(*EMA) {}, true},
		{"exactly six hours", func(e *EMA) { e.SleepHours = 6.0 }, true},
		{"short sleep", func(e *EMA) { e.SleepHours = 5.9 }, false},
		{"stressful event", func(e *EMA) { e.RecentStressfulEvent = true }, false},
		{"small alcohol", func(e *EMA) { e.AlcoholUse = AlcoholSmall }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEMA()
			tt.modify(&e)
			if got := e.IsBaseline(); got != tt.want {
				t.Errorf("IsBaseline() = %v, want %v", got, tt.want)
			}
			if got := e.ToResponse().IsBaseline; got != tt.want {
				t.Errorf("ToResponse().IsBaseline = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEMA_Predicates(t *testing.T) {
	e := validEMA()
	if e.IsTired() || e.IsDistressed() {
		t.Fatal("valid fixture must be neither tired nor distressed")
	}
	e.SleepHours = 5.5
	if !e.IsTired() {
		t.Error("5.5h should be tired")
	}
	e.Anxiety = 4
	if !e.IsDistressed() {
		t.Error("anxiety 4 should be distressed")
	}
	e.Anxiety, e.Sadness = 1, 4
	if !e.IsDistressed() {
		t.Error("sadness 4 should be distressed")
	}
}

func TestEMA_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*EMA)
		wantErr bool
	}{
		{"valid", func(*EMA) {}, false},
		{"optional context", func(e *EMA) { e.NoiseLevel = noisePtr(NoiseQuiet); e.PositiveEventIntensity = intPtr(5) }, false},
		{"missing id", func(e *EMA) { e.ID = "" }, true},
		{"zero timestamp", func(e *EMA) { e.Timestamp = time.Time{} }, true},
		{"mood out of range", func(e *EMA) { e.Happiness = 6 }, true},
		{"mood zero", func(e *EMA) { e.Anger = 0 }, true},
		{"negative sleep", func(e *EMA) { e.SleepHours = -1 }, true},
		{"unknown alcohol", func(e *EMA) { e.AlcoholUse = "LOTS" }, true},
		{"unknown substance", func(e *EMA) { e.SubstanceType = "" }, true},
		{"intensity out of range", func(e *EMA) { e.NegativeEventIntensity = intPtr(0) }, true},
		{"unknown noise", func(e *EMA) { e.NoiseLevel = noisePtr("DEAFENING") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEMA()
			tt.modify(&e)
			err := e.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("expected ErrMalformedRecord, got %v", err)
			}
		})
	}
}

func TestGameSession_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*GameSession)
		wantErr bool
	}{
		{"valid", func(*GameSession) {}, false},
		{"no optional fields", func(s *GameSession) { s.ReactionTimeMs, s.ReactionTimeVariability, s.EMAID = nil, nil, nil }, false},
		{"unknown game", func(s *GameSession) { s.GameType = "TETRIS" }, true},
		{"zero difficulty", func(s *GameSession) { s.DifficultyLevel = 0 }, true},
		{"negative score", func(s *GameSession) { s.Score = -1 }, true},
		{"accuracy above one", func(s *GameSession) { s.Accuracy = 1.01 }, true},
		{"negative reaction time", func(s *GameSession) { s.ReactionTimeMs = intPtr(-5) }, true},
		{"negative errors", func(s *GameSession) { s.CommissionErrors = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.modify(&s)
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGameType_DisplayName(t *testing.T) {
	for _, g := range GameTypes {
		if !g.Valid() {
			t.Errorf("%s listed but not valid", g)
		}
		if g.DisplayName() == string(g) {
			t.Errorf("%s has no display name", g)
		}
	}
	for i := 1; i < len(GameTypes); i++ {
		if GameTypes[i-1] >= GameTypes[i] {
			t.Errorf("GameTypes not in lexicographic order at %d", i)
		}
	}
}

func TestReportPeriod_Valid(t *testing.T) {
	for _, p := range []ReportPeriod{7, 14, 30} {
		if !p.Valid() || p.Days() != int(p) {
			t.Errorf("period %d should be valid", p)
		}
	}
	for _, p := range []ReportPeriod{0, 1, 10, 31, -7} {
		if p.Valid() {
			t.Errorf("period %d should be invalid", p)
		}
	}
}

func TestUser_Location(t *testing.T) {
	tests := []struct {
		tz   string
		want string
	}{
		{"Europe/Prague", "Europe/Prague"},
		{"", "UTC"},
		{"Mars/Olympus_Mons", "UTC"},
	}
	for _, tt := range tests {
		u := User{Timezone: tt.tz}
		if got := u.Location().String(); got != tt.want {
			t.Errorf("Location(%q) = %s, want %s", tt.tz, got, tt.want)
		}
	}
}

func TestDataExport_RoundTrip(t *testing.T) {
	doc := NewDataExport(
		[]EMA{validEMA()},
		[]GameSession{validSession()},
		time.Date(2024, 1, 16, 0, 0, 0, 0, time.FixedZone("CET", 3600)),
	)
	if doc.ExportTimestamp != "2024-01-15T23:00:00Z" {
		t.Errorf("export timestamp not normalised to UTC: %s", doc.ExportTimestamp)
	}

	first, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"emas":`, `"sessions":`, `"exportTimestamp":`} {
		if !strings.Contains(string(first), key) {
			t.Errorf("export is missing %s", key)
		}
	}

	parsed, err := ParseDataExport(first)
	if err != nil {
		t.Fatalf("ParseDataExport: %v", err)
	}
	second, err := json.Marshal(parsed)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("round trip changed the document:\n%s\n%s", first, second)
	}
}

func TestNewDataExport_EmptyListsAreArrays(t *testing.T) {
	data, err := json.Marshal(NewDataExport(nil, nil, time.Unix(0, 0)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"emas":[]`) || !strings.Contains(string(data), `"sessions":[]`) {
		t.Errorf("empty lists must encode as arrays: %s", data)
	}
}

func TestParseDataExport_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"emas":`},
		{"bad enum", `{"emas":[{"id":"e","timestamp":"2024-01-15T08:00:00Z","anger":1,"anxiety":1,"sadness":1,"happiness":1,` +
			`"sleepHours":7,"sleepQuality":3,"alcoholUse":"SOMETIMES","substanceType":"NONE"}],"sessions":[]}`},
		{"bad session", `{"emas":[],"sessions":[{"id":"s","timestamp":"2024-01-15T08:00:00Z","gameType":"GO_NO_GO",` +
			`"difficultyLevel":1,"score":10,"accuracy":2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDataExport([]byte(tt.body))
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("expected ErrMalformedRecord, got %v", err)
			}
		})
	}
}

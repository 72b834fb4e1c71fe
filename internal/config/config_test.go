package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smokyabdulrahman/praytime/internal/praytime"
)

// tempConfigPath returns a path to a config file inside a temp directory.
func tempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// --- Defaults ---

func TestDefaults(t *testing.T) {
	d := Defaults()

	if d.Method == nil || *d.Method != int(praytime.Jafari) {
		t.Errorf("Defaults().Method = %v, want %d", d.Method, praytime.Jafari)
	}
	if d.Asr == nil || *d.Asr != int(praytime.Shafii) {
		t.Errorf("Defaults().Asr = %v, want %d", d.Asr, praytime.Shafii)
	}
	if d.HighLat == nil || *d.HighLat != int(praytime.MidNight) {
		t.Errorf("Defaults().HighLat = %v, want %d", d.HighLat, praytime.MidNight)
	}
	if d.TimeFormat != "24h" {
		t.Errorf("Defaults().TimeFormat = %q, want %q", d.TimeFormat, "24h")
	}

	// Everything else should be unset.
	if d.HasLocation() {
		t.Error("Defaults() should not have a location")
	}
	if d.TimeZone != nil {
		t.Errorf("Defaults().TimeZone = %v, want nil", *d.TimeZone)
	}
	if d.Prayers != "" {
		t.Errorf("Defaults().Prayers = %q, want empty", d.Prayers)
	}
}

// --- Dir and Path with XDG ---

func TestDir_XDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}

	want := filepath.Join("/tmp/xdg-test", "prayer-times")
	if dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}

func TestDir_FallbackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".config", "prayer-times")
	if dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}

func TestPath_XDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	p, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}

	want := filepath.Join("/tmp/xdg-test", "prayer-times", "config.json")
	if p != want {
		t.Errorf("Path() = %q, want %q", p, want)
	}
}

// --- LoadFrom ---

func TestLoadFrom_NonExistentFile(t *testing.T) {
	cfg, err := LoadFrom("/no/such/file.json")
	if err != nil {
		t.Fatalf("LoadFrom non-existent should not error, got: %v", err)
	}
	if cfg.HasLocation() || cfg.Method != nil {
		t.Error("LoadFrom non-existent should return empty config")
	}
}

func TestLoadFrom_ValidJSON(t *testing.T) {
	path := tempConfigPath(t)

	data := Config{
		Latitude:   floatPtr(21.4225),
		Longitude:  floatPtr(39.8262),
		Method:     intPtr(int(praytime.Makkah)),
		TimeFormat: "12h",
	}
	raw, _ := json.MarshalIndent(data, "", "  ")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}

	if cfg.Latitude == nil || *cfg.Latitude != 21.4225 {
		t.Errorf("Latitude = %v, want 21.4225", cfg.Latitude)
	}
	if cfg.Method == nil || *cfg.Method != int(praytime.Makkah) {
		t.Errorf("Method = %v, want %d", cfg.Method, praytime.Makkah)
	}
	if cfg.TimeFormat != "12h" {
		t.Errorf("TimeFormat = %q, want %q", cfg.TimeFormat, "12h")
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := tempConfigPath(t)
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom with invalid JSON should error")
	}
}

func TestLoadFrom_ZeroValuesAreSet(t *testing.T) {
	// Method 0 (Jafari) and a location on the equator / prime meridian are
	// valid and must be distinguishable from "not set".
	path := tempConfigPath(t)
	raw := `{"method": 0, "latitude": 0, "longitude": 0, "timezone": 0}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if cfg.Method == nil || *cfg.Method != 0 {
		t.Errorf("Method = %v, want 0", cfg.Method)
	}
	if !cfg.HasLocation() {
		t.Error("latitude/longitude 0 should count as a location")
	}
	if cfg.TimeZone == nil {
		t.Error("TimeZone 0 should be set")
	}
}

// --- SaveTo ---

func TestSaveTo_CreatesDirectoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "config.json")

	cfg := &Config{Method: intPtr(int(praytime.ISNA))}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("saved file has invalid JSON: %v", err)
	}
	if loaded.Method == nil || *loaded.Method != int(praytime.ISNA) {
		t.Errorf("loaded Method = %v, want %d", loaded.Method, praytime.ISNA)
	}
}

func TestSaveTo_TrailingNewline(t *testing.T) {
	path := tempConfigPath(t)
	cfg := &Config{Prayers: "Fajr"}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("saved file should end with a newline")
	}
}

func TestSaveTo_OmitsUnsetKeys(t *testing.T) {
	path := tempConfigPath(t)
	cfg := &Config{Latitude: floatPtr(0)}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	s := string(data)
	if !strings.Contains(s, `"latitude": 0`) {
		t.Errorf("zero latitude should be written, got %s", s)
	}
	for _, key := range []string{"longitude", "method", "isha_angle", "prayers"} {
		if strings.Contains(s, key) {
			t.Errorf("unset key %q should be omitted, got %s", key, s)
		}
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := tempConfigPath(t)

	original := &Config{}
	for key, value := range map[string]string{
		"latitude":      "24.7136",
		"longitude":     "46.6753",
		"timezone":      "3",
		"method":        "0",
		"asr":           "1",
		"high_lat":      "angle-based",
		"time_format":   "12h",
		"dhuhr_minutes": "2",
		"fajr_angle":    "18.5",
		"isha_minutes":  "90",
		"prayers":       "Fajr,Dhuhr,Asr,Maghrib,Isha",
	} {
		if err := original.Set(key, value); err != nil {
			t.Fatalf("Set(%q, %q): %v", key, value, err)
		}
	}

	if err := original.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}

	for _, key := range ValidKeys {
		want, _ := original.Get(key)
		got, _ := loaded.Get(key)
		if got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

// --- ResetAt ---

func TestResetAt_DeletesFile(t *testing.T) {
	path := tempConfigPath(t)

	cfg := &Config{Prayers: "Fajr"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	if err := ResetAt(path); err != nil {
		t.Fatalf("ResetAt error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("ResetAt should have deleted the file")
	}
}

func TestResetAt_NonExistentFile(t *testing.T) {
	if err := ResetAt("/no/such/file.json"); err != nil {
		t.Errorf("ResetAt on non-existent file should not error, got: %v", err)
	}
}

// --- Set ---

func TestSet_Coordinates(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"latitude", "24.7136", false},
		{"latitude", "-90", false},
		{"latitude", "90.1", true},
		{"latitude", "abc", true},
		{"longitude", "-180", false},
		{"longitude", "180.5", true},
		{"timezone", "5.5", false},
		{"timezone", "-12", false},
		{"timezone", "15", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Set(%q, %q) should error", tt.key, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q) error: %v", tt.key, tt.value, err)
			}
			got, _ := cfg.Get(tt.key)
			if got != tt.value {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.value)
			}
		})
	}
}

func TestSet_InvalidKeepsPrevious(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("latitude", "10"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("latitude", "north"); err == nil {
		t.Fatal("expected error")
	}
	if cfg.Latitude == nil || *cfg.Latitude != 10 {
		t.Errorf("Latitude = %v, want 10 to survive a bad Set", cfg.Latitude)
	}
}

func TestSet_Enums(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{"method", "3", "3", false},
		{"method", "makkah", "4", false},
		{"method", "Tehran", "7", false},
		{"method", "8", "", true},
		{"method", "Ummah", "", true},
		{"asr", "hanafi", "1", false},
		{"asr", "0", "0", false},
		{"asr", "2", "", true},
		{"high_lat", "none", "0", false},
		{"high_lat", "3", "3", false},
		{"high_lat", "polar", "", true},
		{"time_format", "12H", "12h", false},
		{"time_format", "float", "float", false},
		{"time_format", "13h", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Set(%q, %q) should error", tt.key, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q) error: %v", tt.key, tt.value, err)
			}
			if got, _ := cfg.Get(tt.key); got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestSet_EnumErrorsWrapInvalidConfig(t *testing.T) {
	cfg := &Config{}
	err := cfg.Set("method", "99")
	if !errors.Is(err, praytime.ErrInvalidConfig) {
		t.Errorf("Set(method, 99) error = %v, want ErrInvalidConfig", err)
	}
}

func TestSet_AngleAndMinutesAreExclusive(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("isha_angle", "17"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("isha_minutes", "90"); err != nil {
		t.Fatal(err)
	}
	if cfg.IshaAngle != nil {
		t.Error("isha_minutes should clear isha_angle")
	}

	if err := cfg.Set("maghrib_minutes", "3"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("maghrib_angle", "4"); err != nil {
		t.Fatal(err)
	}
	if cfg.MaghribMinutes != nil {
		t.Error("maghrib_angle should clear maghrib_minutes")
	}
}

func TestSet_Prayers(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("prayers", "fajr, maghrib,ISHA"); err != nil {
		t.Fatalf("Set prayers error: %v", err)
	}
	if cfg.Prayers != "Fajr,Maghrib,Isha" {
		t.Errorf("Prayers = %q, want normalised list", cfg.Prayers)
	}

	if err := cfg.Set("prayers", "Fajr,Imsak"); err == nil {
		t.Error("Set prayers with unknown name should error")
	}
	if cfg.Prayers != "Fajr,Maghrib,Isha" {
		t.Errorf("Prayers = %q, should be unchanged after error", cfg.Prayers)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.Set("city", "London")
	if err == nil {
		t.Fatal("Set unknown key should error")
	}
	if !strings.Contains(err.Error(), "valid keys") {
		t.Errorf("error should list valid keys, got: %v", err)
	}
}

// --- Get ---

func TestGet_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	for _, key := range ValidKeys {
		v, err := cfg.Get(key)
		if err != nil {
			t.Errorf("Get(%q) error: %v", key, err)
		}
		if v != "" {
			t.Errorf("Get(%q) = %q, want empty", key, v)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.Get("school"); err == nil {
		t.Error("Get unknown key should error")
	}
}

func TestValidKeys_SetAndGetAgree(t *testing.T) {
	samples := map[string]string{
		"latitude": "1", "longitude": "2", "timezone": "3",
		"method": "4", "asr": "1", "high_lat": "2",
		"time_format": "12hNS", "dhuhr_minutes": "1",
		"fajr_angle": "19", "maghrib_angle": "4", "maghrib_minutes": "5",
		"isha_angle": "18", "isha_minutes": "60",
		"prayers": "Asr",
	}
	for _, key := range ValidKeys {
		value, ok := samples[key]
		if !ok {
			t.Errorf("no sample value for key %q", key)
			continue
		}
		cfg := &Config{}
		if err := cfg.Set(key, value); err != nil {
			t.Errorf("Set(%q, %q) error: %v", key, value, err)
			continue
		}
		if got, _ := cfg.Get(key); got != value {
			t.Errorf("Get(%q) = %q, want %q", key, got, value)
		}
	}
}

// --- ApplyEnv ---

func TestApplyEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("PRAYER_TIMES_LATITUDE", "51.5")
	t.Setenv("PRAYER_TIMES_HIGH_LAT", "angle-based")

	cfg := &Config{Latitude: floatPtr(10)}
	if err := cfg.ApplyEnv(""); err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.Latitude == nil || *cfg.Latitude != 51.5 {
		t.Errorf("Latitude = %v, want 51.5", cfg.Latitude)
	}
	if cfg.HighLat == nil || *cfg.HighLat != int(praytime.AngleBased) {
		t.Errorf("HighLat = %v, want %d", cfg.HighLat, praytime.AngleBased)
	}
}

func TestApplyEnv_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PRAYER_TIMES_LONGITUDE=39.8262\nPRAYER_TIMES_METHOD=Makkah\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	// The process environment wins over the file.
	t.Setenv("PRAYER_TIMES_METHOD", "3")

	cfg := &Config{}
	if err := cfg.ApplyEnv(path); err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.Longitude == nil || *cfg.Longitude != 39.8262 {
		t.Errorf("Longitude = %v, want 39.8262", cfg.Longitude)
	}
	if cfg.Method == nil || *cfg.Method != int(praytime.MWL) {
		t.Errorf("Method = %v, want %d", cfg.Method, praytime.MWL)
	}
}

func TestApplyEnv_MissingDotEnvFile(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing dotenv file should not error, got: %v", err)
	}
}

func TestApplyEnv_InvalidValue(t *testing.T) {
	t.Setenv("PRAYER_TIMES_ASR", "maliki")

	cfg := &Config{}
	err := cfg.ApplyEnv("")
	if err == nil {
		t.Fatal("ApplyEnv with invalid value should error")
	}
	if !strings.Contains(err.Error(), "PRAYER_TIMES_ASR") {
		t.Errorf("error should name the variable, got: %v", err)
	}
}

func TestApplyEnv_ExclusivePairs(t *testing.T) {
	tests := []struct {
		name   string
		dotenv string
		env    map[string]string
		want   string
	}{
		{
			name: "isha angle and minutes",
			env:  map[string]string{"PRAYER_TIMES_ISHA_ANGLE": "17", "PRAYER_TIMES_ISHA_MINUTES": "90"},
			want: "PRAYER_TIMES_ISHA_ANGLE and PRAYER_TIMES_ISHA_MINUTES",
		},
		{
			name: "maghrib angle and minutes",
			env:  map[string]string{"PRAYER_TIMES_MAGHRIB_ANGLE": "4", "PRAYER_TIMES_MAGHRIB_MINUTES": "3"},
			want: "PRAYER_TIMES_MAGHRIB_ANGLE and PRAYER_TIMES_MAGHRIB_MINUTES",
		},
		{
			name:   "split across .env and environment",
			dotenv: "PRAYER_TIMES_ISHA_ANGLE=17\n",
			env:    map[string]string{"PRAYER_TIMES_ISHA_MINUTES": "90"},
			want:   "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"MAGHRIB_ANGLE", "MAGHRIB_MINUTES", "ISHA_ANGLE", "ISHA_MINUTES"} {
				t.Setenv("PRAYER_TIMES_"+key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), ".env")
			if err := os.WriteFile(path, []byte(tt.dotenv), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg := &Config{IshaMinutes: floatPtr(60)}
			err := cfg.ApplyEnv(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("ApplyEnv error = %v, want %q", err, tt.want)
			}
			if cfg.IshaAngle != nil || cfg.MaghribAngle != nil || *cfg.IshaMinutes != 60 {
				t.Errorf("config changed despite the error: %+v", cfg)
			}
		})
	}
}

func TestApplyEnv_AngleReplacesStoredMinutes(t *testing.T) {
	t.Setenv("PRAYER_TIMES_ISHA_MINUTES", "")
	t.Setenv("PRAYER_TIMES_ISHA_ANGLE", "18")

	cfg := &Config{IshaMinutes: floatPtr(90)}
	if err := cfg.ApplyEnv(""); err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.IshaMinutes != nil || cfg.IshaAngle == nil || *cfg.IshaAngle != 18 {
		t.Errorf("isha = angle %v minutes %v, want angle 18 only", cfg.IshaAngle, cfg.IshaMinutes)
	}
}

func TestEnvName(t *testing.T) {
	if got := EnvName("high_lat"); got != "PRAYER_TIMES_HIGH_LAT" {
		t.Errorf("EnvName(high_lat) = %q", got)
	}
}

// --- Engine ---

func TestEngine_BothIshaFormsInFile(t *testing.T) {
	cfg := &Config{Method: intPtr(int(praytime.MWL)), IshaAngle: floatPtr(16), IshaMinutes: floatPtr(90)}
	got, err := cfg.Engine()
	if err != nil {
		t.Fatalf("Engine error: %v", err)
	}
	want := praytime.Params{FajrAngle: 18, MaghribSelector: praytime.Minutes, IshaSelector: praytime.Angle, IshaValue: 16}
	if got.Method != praytime.Custom || got.Params() != want {
		t.Errorf("Engine() = %v %+v, want Custom %+v", got.Method, got.Params(), want)
	}
}

func TestEngine_NoCustomKeepsMethod(t *testing.T) {
	cfg := &Config{Method: intPtr(int(praytime.Egypt)), DhuhrMinutes: floatPtr(2)}
	got, err := cfg.Engine()
	if err != nil {
		t.Fatalf("Engine error: %v", err)
	}
	if got.Method != praytime.Egypt || got.Custom != praytime.DefaultConfig().Custom {
		t.Errorf("Engine() = %+v, want Egypt with untouched Custom", got)
	}
}

func TestEngine_EmptyIsDefault(t *testing.T) {
	cfg := &Config{}
	got, err := cfg.Engine()
	if err != nil {
		t.Fatalf("Engine error: %v", err)
	}
	if got != praytime.DefaultConfig() {
		t.Errorf("Engine() = %+v, want defaults", got)
	}
}

func TestEngine_MethodAndFlags(t *testing.T) {
	cfg := &Config{
		Method:       intPtr(int(praytime.Egypt)),
		Asr:          intPtr(int(praytime.Hanafi)),
		HighLat:      intPtr(int(praytime.None)),
		TimeFormat:   "12hNS",
		DhuhrMinutes: floatPtr(2),
	}
	got, err := cfg.Engine()
	if err != nil {
		t.Fatalf("Engine error: %v", err)
	}
	if got.Method != praytime.Egypt {
		t.Errorf("Method = %s, want Egypt", got.Method)
	}
	if got.Asr != praytime.Hanafi {
		t.Errorf("Asr = %s, want Hanafi", got.Asr)
	}
	if got.HighLat != praytime.None {
		t.Errorf("HighLat = %s, want none", got.HighLat)
	}
	if got.Format != praytime.Time12NoSuffix {
		t.Errorf("Format = %s, want 12hNS", got.Format)
	}
	if got.DhuhrMinutes != 2 {
		t.Errorf("DhuhrMinutes = %v, want 2", got.DhuhrMinutes)
	}
}

func TestEngine_CustomLayersOverMethod(t *testing.T) {
	cfg := &Config{
		Method:      intPtr(int(praytime.MWL)),
		IshaMinutes: floatPtr(90),
	}
	got, err := cfg.Engine()
	if err != nil {
		t.Fatalf("Engine error: %v", err)
	}
	if got.Method != praytime.Custom {
		t.Fatalf("Method = %s, want Custom", got.Method)
	}
	p := got.Params()
	want := praytime.Params{
		FajrAngle:       18,
		MaghribSelector: praytime.Minutes,
		MaghribValue:    0,
		IshaSelector:    praytime.Minutes,
		IshaValue:       90,
	}
	if p != want {
		t.Errorf("Params = %v, want %v", p, want)
	}
}

func TestEngine_InvalidStoredValues(t *testing.T) {
	cfg := &Config{
		Method: intPtr(42),
		Asr:    intPtr(5),
	}
	_, err := cfg.Engine()
	if err == nil {
		t.Fatal("Engine with out of range values should error")
	}
	if !errors.Is(err, praytime.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
	for _, want := range []string{"method 42", "asr method 5"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestEngine_InvalidTimeFormat(t *testing.T) {
	cfg := &Config{TimeFormat: "13h"}
	if _, err := cfg.Engine(); err == nil {
		t.Error("Engine with bad time format should error")
	}
}

// --- PrayerList ---

func TestPrayerList(t *testing.T) {
	def := []string{"Fajr", "Isha"}
	cfg := &Config{}
	if got := cfg.PrayerList(def); len(got) != 2 {
		t.Errorf("PrayerList unset = %v, want default", got)
	}
	cfg.Prayers = "Dhuhr,Asr,Maghrib"
	got := cfg.PrayerList(def)
	if len(got) != 3 || got[0] != "Dhuhr" || got[2] != "Maghrib" {
		t.Errorf("PrayerList = %v", got)
	}
}

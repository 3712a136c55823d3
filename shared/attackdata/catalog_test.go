package attackdata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCombo = `
attacks:
  - id: jab
    kind: combo
    combo:
      max_combo: 2
      continue_window: 0.5
      knockback: 50
`

func TestDefaultCatalogLoads(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"dash", "dash_slash", "heavy", "punch"}, cat.IDs())

	punch, ok := cat.Get("punch")
	require.True(t, ok)
	assert.Equal(t, KindCombo, punch.Kind)
	assert.Equal(t, 3, punch.Combo.MaxCombo)
	assert.True(t, punch.ComboCapable())

	heavy, ok := cat.Get("heavy")
	require.True(t, ok)
	assert.False(t, heavy.ComboCapable())
	assert.True(t, heavy.Heavy.AutoHit)

	clip, ok := cat.Clip("punch")
	require.True(t, ok)
	require.Len(t, clip.Events, 1)
	assert.Equal(t, "canContinueCombo", clip.Events[0].Name)
}

func TestParseFillsDefaults(t *testing.T) {
	cat, err := Parse([]byte(minimalCombo))
	require.NoError(t, err)

	jab, ok := cat.Get("jab")
	require.True(t, ok)
	assert.Equal(t, ModeEasy, jab.Mode)
	assert.Equal(t, 10.0, jab.Damage)
	assert.Equal(t, 0.1, jab.HitboxLifetime)
	assert.Equal(t, 2.0, jab.Combo.StartTimeout)
	assert.Equal(t, 10.0, jab.Combo.SafetyTimeout)
	assert.Equal(t, 0.1, jab.Combo.InputGrace)
	assert.Equal(t, 0.25, jab.Combo.WindowDelay)
	assert.Equal(t, 50.0, jab.Combo.FinalKnockback)
}

func TestParseRejectsInvalidSpecs(t *testing.T) {
	cases := map[string]string{
		"unknown kind": `
attacks:
  - id: x
    kind: uppercut
`,
		"missing combo block": `
attacks:
  - id: x
    kind: combo
`,
		"zero max combo": `
attacks:
  - id: x
    kind: combo
    combo: { max_combo: 0, continue_window: 1 }
`,
		"windup beyond hold": `
attacks:
  - id: x
    kind: heavy
    heavy: { windup: 4, max_hold: 3 }
`,
		"unknown ease": `
attacks:
  - id: x
    kind: dash_move
    dash: { duration: 0.3, ease: wobble }
`,
		"unknown mode": `
attacks:
  - id: x
    kind: dash_move
    mode: nightmare
    dash: { duration: 0.3 }
`,
		"duplicate id": `
attacks:
  - id: x
    kind: dash_move
    dash: { duration: 0.3 }
  - id: x
    kind: dash_move
    dash: { duration: 0.3 }
`,
		"clip event past end": `
clips:
  - cue: punch
    length: 0.2
    events: [{ at: 0.5, name: canContinueCombo }]
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestWithModeCopies(t *testing.T) {
	cat, err := Parse([]byte(minimalCombo))
	require.NoError(t, err)
	jab, _ := cat.Get("jab")

	hard := jab.WithMode(ModeHard)

	assert.True(t, hard.Hard())
	assert.False(t, jab.Hard())
}

func TestComboSafetyNeverUndercutsWindows(t *testing.T) {
	c := &ComboSpec{MaxCombo: 10, ContinueWindow: 1, WindowDelay: 0.25, SafetyTimeout: 2}
	assert.InDelta(t, 13.75, c.Safety(), 1e-9)

	c.SafetyTimeout = 20
	assert.Equal(t, 20.0, c.Safety())
}

func TestLoadFileWrapsErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcherReloadsOnReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "attacks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalCombo), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	tmp := filepath.Join(dir, "attacks.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(minimalCombo+`
  - id: kick
    kind: combo
    combo: { max_combo: 1, continue_window: 0.5 }
`), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cat := <-w.Changed:
			if _, ok := cat.Get("kick"); ok {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatcherReloadsAfterTwoStepSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "attacks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalCombo), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	full := minimalCombo + `
  - id: kick
    kind: combo
    combo: { max_combo: 1, continue_window: 0.5 }
`
	require.NoError(t, os.WriteFile(path, []byte(full[:len(full)/2]+"\n  - [broken"), 0o644))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(full), 0o644))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cat := <-w.Changed:
			if _, ok := cat.Get("kick"); ok {
				return
			}
		case err := <-w.Errors:
			t.Logf("watch error: %v", err)
		case <-deadline:
			t.Fatal("complete write was never reloaded")
		}
	}
}

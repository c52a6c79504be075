package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

func TestWindowRepositoryLoad(t *testing.T) {
	assertion := assert.New(t)

	path := filepath.Join(t.TempDir(), "window_state.txt")
	err := os.WriteFile(path, []byte("0\n5\n10\n20\n30\n40\n50"), 0644)
	assertion.NoError(err)

	repo := WindowRepository{Path: path}
	window, err := repo.Load(5)

	assertion.NoError(err)
	assertion.Equal(30.00, window.Mean())
	assertion.InDelta(15.8114, window.SampleStdev(), 0.0001)
	assertion.Equal([]float64{10, 20, 30, 40, 50}, window.Values())
}

func TestWindowRepositorySaveFormat(t *testing.T) {
	assertion := assert.New(t)

	path := filepath.Join(t.TempDir(), "window_state.txt")
	repo := WindowRepository{Path: path}

	window := model.NewRollingWindow(5)
	for _, value := range []float64{10, 20, 30, 40, 50} {
		window.Add(value)
	}

	err := repo.Save(window)
	assertion.NoError(err)

	content, err := os.ReadFile(path)
	assertion.NoError(err)
	assertion.Equal("0\n5\n10\n20\n30\n40\n50", string(content))
}

func TestWindowRepositoryRoundTrip(t *testing.T) {
	assertion := assert.New(t)

	path := filepath.Join(t.TempDir(), "window_state.txt")
	repo := WindowRepository{Path: path}

	window := model.NewRollingWindow(5)
	for _, value := range []float64{10, 20, 30, 40, 50, 60, 55.84} {
		window.Add(value)
	}

	assertion.NoError(repo.Save(window))

	restored, err := repo.Load(5)
	assertion.NoError(err)

	assertion.Equal(window.Mean(), restored.Mean())
	assertion.Equal(window.SampleStdev(), restored.SampleStdev())
	assertion.Equal(window.Values(), restored.Values())
	assertion.Equal(window.State(), restored.State())
}

func TestWindowRepositoryTooManyValues(t *testing.T) {
	assertion := assert.New(t)

	path := filepath.Join(t.TempDir(), "window_state.txt")
	err := os.WriteFile(path, []byte("0\n5\n10\n20\n30\n40\n50\n60"), 0644)
	assertion.NoError(err)

	repo := WindowRepository{Path: path}
	_, err = repo.Load(5)

	assertion.Error(err)
	assertion.ErrorAs(err, &CorruptStateError{})
}

func TestWindowRepositoryCountExceedsCapacity(t *testing.T) {
	assertion := assert.New(t)

	path := filepath.Join(t.TempDir(), "window_state.txt")
	err := os.WriteFile(path, []byte("0\n9\n10\n20\n30"), 0644)
	assertion.NoError(err)

	repo := WindowRepository{Path: path}
	_, err = repo.Load(5)

	assertion.Error(err)
	assertion.ErrorAs(err, &CorruptStateError{})
}

func TestWindowRepositoryInvalidValue(t *testing.T) {
	assertion := assert.New(t)

	path := filepath.Join(t.TempDir(), "window_state.txt")
	err := os.WriteFile(path, []byte("0\n2\n10\nbroken"), 0644)
	assertion.NoError(err)

	repo := WindowRepository{Path: path}
	_, err = repo.Load(5)

	assertion.Error(err)
	assertion.ErrorAs(err, &CorruptStateError{})
}

func TestWindowRepositoryAllZeroSlots(t *testing.T) {
	assertion := assert.New(t)

	path := filepath.Join(t.TempDir(), "window_state.txt")
	err := os.WriteFile(path, []byte("0\n5\n0\n0\n0\n0\n0"), 0644)
	assertion.NoError(err)

	repo := WindowRepository{Path: path}
	window, err := repo.Load(5)

	assertion.NoError(err)
	assertion.Equal(5, window.Count())
	assertion.Equal(0.00, window.Mean())
	assertion.Equal(0.00, window.SampleStdev())
}

func TestWindowRepositoryExists(t *testing.T) {
	assertion := assert.New(t)

	path := filepath.Join(t.TempDir(), "window_state.txt")
	repo := WindowRepository{Path: path}

	assertion.False(repo.Exists())
	assertion.NoError(os.WriteFile(path, []byte("0\n0"), 0644))
	assertion.True(repo.Exists())
}

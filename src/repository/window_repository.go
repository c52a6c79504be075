package repository

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gitlab.com/open-soft/go-stock-bot/src/model"
)

// CorruptStateError means the persisted window file does not fit the declared
// capacity. Loading must abort startup, running on corrupted statistics is
// worse than replaying the window from live ticks.
type CorruptStateError struct {
	Path   string
	Reason string
}

func (e CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt window state [%s]: %s", e.Path, e.Reason)
}

// WindowRepository persists the rolling window as a plain text file:
// line 1 is the start offset, line 2 the count, the remaining lines are the
// backing slots in physical storage order.
type WindowRepository struct {
	Path string
}

func (repo *WindowRepository) Save(window *model.RollingWindow) error {
	state := window.State()

	lines := make([]string, 0, len(state.Slots)+2)
	lines = append(lines, strconv.Itoa(state.Offset))
	lines = append(lines, strconv.Itoa(state.Count))

	for _, value := range state.Slots {
		lines = append(lines, strconv.FormatFloat(value, 'f', -1, 64))
	}

	return os.WriteFile(repo.Path, []byte(strings.Join(lines, "\n")), 0644)
}

func (repo *WindowRepository) Load(capacity int) (*model.RollingWindow, error) {
	content, err := os.ReadFile(repo.Path)

	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")

	if len(lines) < 2 {
		return nil, CorruptStateError{Path: repo.Path, Reason: "offset and count lines are required"}
	}

	offset, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, CorruptStateError{Path: repo.Path, Reason: fmt.Sprintf("invalid offset: %s", lines[0])}
	}

	count, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, CorruptStateError{Path: repo.Path, Reason: fmt.Sprintf("invalid count: %s", lines[1])}
	}

	dataLines := lines[2:]

	if len(dataLines) > capacity {
		return nil, CorruptStateError{
			Path:   repo.Path,
			Reason: fmt.Sprintf("%d values exceed capacity %d", len(dataLines), capacity),
		}
	}

	if count > capacity || count < 0 {
		return nil, CorruptStateError{
			Path:   repo.Path,
			Reason: fmt.Sprintf("count %d exceeds capacity %d", count, capacity),
		}
	}

	if offset < 0 || offset >= capacity {
		return nil, CorruptStateError{
			Path:   repo.Path,
			Reason: fmt.Sprintf("offset %d is out of range for capacity %d", offset, capacity),
		}
	}

	slots := make([]float64, 0, capacity)

	for _, line := range dataLines {
		value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return nil, CorruptStateError{Path: repo.Path, Reason: fmt.Sprintf("invalid value: %s", line)}
		}

		slots = append(slots, value)
	}

	return model.RestoreWindow(capacity, model.WindowState{
		Offset: offset,
		Count:  count,
		Slots:  slots,
	}), nil
}

func (repo *WindowRepository) Exists() bool {
	_, err := os.Stat(repo.Path)

	return err == nil
}

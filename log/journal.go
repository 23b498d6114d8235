package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oqtopus-team/oqtopus-fidelity/common"
)

// ResultsJournal appends one JSON line per finished experiment to a file
// named after the current day.
type ResultsJournal struct {
	logger *slog.Logger
	dl     *dailyLogger
}

func NewResultsJournal(fileDir string) (*ResultsJournal, error) {
	if err := common.IsDirWritable(fileDir); err != nil {
		return nil, fmt.Errorf("failed to write to %s: %w", fileDir, err)
	}
	dl := newDailyLogger(fileDir)
	return &ResultsJournal{
		logger: slog.New(slog.NewJSONHandler(dl, nil)),
		dl:     dl,
	}, nil
}

func (j *ResultsJournal) Record(experiment string, elapsed time.Duration, err error) {
	if err != nil {
		j.logger.Error("Experiment",
			slog.String("experiment", experiment),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()))
		return
	}
	j.logger.Info("Experiment",
		slog.String("experiment", experiment),
		slog.Duration("elapsed", elapsed))
}

func (j *ResultsJournal) Close() error {
	return j.dl.Close()
}

type dailyLogger struct {
	mu              sync.Mutex
	fileDir         string
	currentFileName string
	file            *os.File
	now             func() time.Time
}

func newDailyLogger(fileDir string) *dailyLogger {
	return &dailyLogger{
		fileDir: fileDir,
		now:     time.Now,
	}
}

func (dl *dailyLogger) Write(p []byte) (n int, err error) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	fileName := fmt.Sprintf("results-%s.log", dl.now().Format("2006-01-02"))
	if dl.file == nil || dl.currentFileName != fileName {
		if dl.file != nil {
			dl.file.Close()
		}
		var err error
		dl.file, err = os.OpenFile(filepath.Join(dl.fileDir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, err
		}
		dl.currentFileName = fileName
	}
	return dl.file.Write(p)
}

func (dl *dailyLogger) Close() error {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file != nil {
		return dl.file.Close()
	}
	return nil
}

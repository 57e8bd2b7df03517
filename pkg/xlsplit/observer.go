package xlsplit

// Step is a phase of a split run.
type Step int

const (
	// StepRead opens the input workbook.
	StepRead Step = iota + 1
	// StepParse reads the rows of the first sheet.
	StepParse
	// StepSave writes the output files.
	StepSave
)

// StepCount is the number of steps in a split run.
const StepCount = 3

func (s Step) String() string {
	switch s {
	case StepRead:
		return "reading file"
	case StepParse:
		return "parsing sheet"
	case StepSave:
		return "saving files"
	default:
		return "unknown step"
	}
}

// Observer receives progress notifications from Split.
type Observer interface {
	// StepStarted is called when a step begins.
	StepStarted(step Step)
	// PageClosed is called once per output file, after it is closed.
	// totalPages is an estimate derived from the source row count.
	PageClosed(page, totalPages int)
	// Finished is called after the last output file is closed.
	Finished()
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) StepStarted(Step)    {}
func (NopObserver) PageClosed(int, int) {}
func (NopObserver) Finished()           {}

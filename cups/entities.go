// Package cups implements the CUPS/IPP client operations layered on
// top of the core ipp codec: printer enumeration, print job submission,
// job queries and control, and printer move.
package cups

import (
	"io"

	"github.com/printkit/ipp"
)

// PrinterState mirrors the IPP printer-state enum
type PrinterState int

const (
	PrinterIdle       PrinterState = 3
	PrinterProcessing PrinterState = 4
	PrinterStopped    PrinterState = 5
)

func (s PrinterState) String() string {
	switch s {
	case PrinterIdle:
		return "idle"
	case PrinterProcessing:
		return "processing"
	case PrinterStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// cupsImplicitClass is the printer-type bit marking a CUPS implicit
// class: a synthetic entry covering several real printers of the same
// name, suppressed by GetPrintersWithoutDefault when it duplicates a
// concrete entry.
const cupsImplicitClass = 0x00000004

// Printer is the projection of a printer-attributes group
type Printer struct {
	URI                   string
	Name                  string
	Description           string
	Location              string
	State                 PrinterState
	StateReasons          []string
	IsDefault             bool
	MediaSupported        []string
	ResolutionSupported   []string
	MimeTypesSupported    []string
	PrinterType           uint32
	Attributes            map[string][]ipp.Value
}

// JobState mirrors the IPP job-state enum
type JobState int

const (
	JobPending       JobState = 3
	JobPendingHeld   JobState = 4
	JobProcessing    JobState = 5
	JobStopped       JobState = 6
	JobCanceled      JobState = 7
	JobAborted       JobState = 8
	JobCompleted     JobState = 9
)

func (s JobState) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobPendingHeld:
		return "pending-held"
	case JobProcessing:
		return "processing"
	case JobStopped:
		return "stopped"
	case JobCanceled:
		return "canceled"
	case JobAborted:
		return "aborted"
	case JobCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// PrintJob describes a document submission. Copies below 1 are treated
// as 1; zero-value Duplex and Color pick one-sided and monochrome, and a
// zero-value Portrait (false) requests landscape orientation.
type PrintJob struct {
	Document    io.Reader
	UserName    string
	JobName     string
	Copies      int
	PageRanges  string
	Duplex      bool
	Portrait    bool
	Color       bool
	PageFormat  string
	Resolution  string

	// JobPriority is the job-priority integer attribute (1-100); zero
	// means "let the server pick".
	JobPriority int
	// JobHoldUntil is the job-hold-until keyword, e.g. "no-hold" or
	// "indefinite"; empty means "let the server pick".
	JobHoldUntil string

	// OperationAttributes are caller-supplied operation-group
	// attributes merged in after the standard ones.
	OperationAttributes map[string]string
	// JobAttributesString is parsed per "name:syntax:value#..." and
	// merged into the job-attributes group. See ParseJobAttributes.
	JobAttributesString string
}

func defaultPrintJob() PrintJob {
	return PrintJob{Copies: 1, Portrait: true}
}

// PrintJobAttributes is the projection of a job-attributes group
type PrintJobAttributes struct {
	JobID           int
	JobURI          string
	PrinterURI      string
	UserName        string
	JobName         string
	State           JobState
	JobStateReasons []string
	Attributes      map[string][]ipp.Value
}

// Credentials carries HTTP auth credentials for the target server
type Credentials struct {
	User     string
	Password string
}

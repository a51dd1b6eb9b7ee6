package types

// UploadStatus is the lifecycle state of the single outstanding translate operation.
type UploadStatus string

const (
	UploadIdle      UploadStatus = "idle"
	UploadInFlight  UploadStatus = "in-flight"
	UploadRetrying  UploadStatus = "retrying"
	UploadSucceeded UploadStatus = "succeeded"
	UploadFailed    UploadStatus = "failed"
	UploadCancelled UploadStatus = "cancelled"
)

// Terminal reports whether the status is one the operation cannot leave
// except through a new submit.
func (s UploadStatus) Terminal() bool {
	switch s {
	case UploadSucceeded, UploadFailed, UploadCancelled:
		return true
	}
	return false
}

// VisualPhase tells the presentation layer how urgent the elapsed-time
// indicator should look. Normal up to one minute, overtime after.
type VisualPhase string

const (
	PhaseNormal   VisualPhase = "normal"
	PhaseOvertime VisualPhase = "overtime"
)

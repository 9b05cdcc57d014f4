package models

// DocumentKind tags the five recognized identity/eligibility documents. The
// values double as storage folder names, matching the original upload buckets.
type DocumentKind string

const (
	DocumentKindRenterID       DocumentKind = "ktpPenyewa"
	DocumentKindGuarantorID    DocumentKind = "ktpPenjamin"
	DocumentKindEmployeeID     DocumentKind = "idKaryawan"
	DocumentKindDrivingLicense DocumentKind = "simA"
	DocumentKindTrainTicket    DocumentKind = "tiketKereta"
)

// DocumentKinds lists every recognized kind in form order.
var DocumentKinds = []DocumentKind{
	DocumentKindRenterID,
	DocumentKindGuarantorID,
	DocumentKindEmployeeID,
	DocumentKindDrivingLicense,
	DocumentKindTrainTicket,
}

func IsValidDocumentKind(kind string) bool {
	for _, k := range DocumentKinds {
		if string(k) == kind {
			return true
		}
	}
	return false
}

type DocumentStatus string

const (
	DocumentStatusNotStarted DocumentStatus = "notStarted"
	DocumentStatusUploading  DocumentStatus = "uploading"
	DocumentStatusUploaded   DocumentStatus = "uploaded"
	DocumentStatusFailed     DocumentStatus = "failed"
)

// DocumentState is the per-kind upload state the checkout form tracks. A kind
// counts as provided only when Status is uploaded and a URL is present.
type DocumentState struct {
	Status DocumentStatus `json:"status"`
	URL    string         `json:"url,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (s DocumentState) Uploaded() bool {
	return s.Status == DocumentStatusUploaded && s.URL != ""
}

// DocumentSet aggregates the form's upload states keyed by kind. Kinds the
// client never touched may be absent entirely, which equals notStarted.
type DocumentSet map[DocumentKind]DocumentState

// HasUploading reports whether any document upload is still in flight.
func (d DocumentSet) HasUploading() bool {
	for _, state := range d {
		if state.Status == DocumentStatusUploading {
			return true
		}
	}
	return false
}

// URL returns the uploaded URL for kind, or empty when not uploaded.
func (d DocumentSet) URL(kind DocumentKind) string {
	if state, ok := d[kind]; ok && state.Uploaded() {
		return state.URL
	}
	return ""
}

// RequiredDocuments returns the kinds a booking must have uploaded before
// submission. Cars require an active SIM; the motorcycle flow leaves it
// optional. Employee ID and the round-trip train ticket are always optional.
func RequiredDocuments(vehicleType VehicleType) []DocumentKind {
	v := Vehicle{Type: vehicleType}
	if v.IsMotorcycle() {
		return []DocumentKind{DocumentKindRenterID, DocumentKindGuarantorID}
	}
	return []DocumentKind{DocumentKindRenterID, DocumentKindGuarantorID, DocumentKindDrivingLicense}
}

// MissingRequired lists required kinds that lack an uploaded URL.
func (d DocumentSet) MissingRequired(vehicleType VehicleType) []DocumentKind {
	var missing []DocumentKind
	for _, kind := range RequiredDocuments(vehicleType) {
		if d.URL(kind) == "" {
			missing = append(missing, kind)
		}
	}
	return missing
}

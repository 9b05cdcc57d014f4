package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDocumentKind(t *testing.T) {
	for _, kind := range DocumentKinds {
		assert.True(t, IsValidDocumentKind(string(kind)))
	}
	assert.False(t, IsValidDocumentKind("paspor"))
	assert.False(t, IsValidDocumentKind(""))
}

func TestRequiredDocuments(t *testing.T) {
	car := RequiredDocuments(VehicleTypeCar)
	assert.Equal(t, []DocumentKind{DocumentKindRenterID, DocumentKindGuarantorID, DocumentKindDrivingLicense}, car)

	motor := RequiredDocuments(VehicleTypeMotorcycle)
	assert.Equal(t, []DocumentKind{DocumentKindRenterID, DocumentKindGuarantorID}, motor)
}

func TestDocumentSetHasUploading(t *testing.T) {
	docs := DocumentSet{
		DocumentKindRenterID:    {Status: DocumentStatusUploaded, URL: "https://cdn/ktp.jpg"},
		DocumentKindGuarantorID: {Status: DocumentStatusUploading},
	}
	assert.True(t, docs.HasUploading())

	docs[DocumentKindGuarantorID] = DocumentState{Status: DocumentStatusUploaded, URL: "https://cdn/ktp2.jpg"}
	assert.False(t, docs.HasUploading())

	assert.False(t, DocumentSet{}.HasUploading())
}

func TestDocumentSetURL(t *testing.T) {
	docs := DocumentSet{
		DocumentKindRenterID:       {Status: DocumentStatusUploaded, URL: "https://cdn/ktp.jpg"},
		DocumentKindGuarantorID:    {Status: DocumentStatusFailed, Error: "format file tidak didukung"},
		DocumentKindDrivingLicense: {Status: DocumentStatusUploaded}, // uploaded but no URL recorded
	}

	assert.Equal(t, "https://cdn/ktp.jpg", docs.URL(DocumentKindRenterID))
	assert.Empty(t, docs.URL(DocumentKindGuarantorID))
	assert.Empty(t, docs.URL(DocumentKindDrivingLicense))
	assert.Empty(t, docs.URL(DocumentKindTrainTicket))
}

func TestMissingRequired(t *testing.T) {
	docs := DocumentSet{
		DocumentKindRenterID:    {Status: DocumentStatusUploaded, URL: "https://cdn/ktp.jpg"},
		DocumentKindGuarantorID: {Status: DocumentStatusUploaded, URL: "https://cdn/ktp2.jpg"},
	}

	// Car checkout needs the SIM too
	assert.Equal(t, []DocumentKind{DocumentKindDrivingLicense}, docs.MissingRequired(VehicleTypeCar))

	// The motorcycle flow does not
	assert.Empty(t, docs.MissingRequired(VehicleTypeMotorcycle))

	// Optional kinds never block submission
	docs[DocumentKindDrivingLicense] = DocumentState{Status: DocumentStatusUploaded, URL: "https://cdn/sim.jpg"}
	assert.Empty(t, docs.MissingRequired(VehicleTypeCar))
	assert.NotContains(t, docs.MissingRequired(VehicleTypeCar), DocumentKindEmployeeID)

	assert.Equal(t,
		[]DocumentKind{DocumentKindRenterID, DocumentKindGuarantorID, DocumentKindDrivingLicense},
		DocumentSet{}.MissingRequired(VehicleTypeCar))
}

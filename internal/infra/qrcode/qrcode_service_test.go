package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateCourseQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateCourseQR(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_ParseCourseQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	courseID := uuid.New()

	payload, err := json.Marshal(QRCodeData{CourseID: courseID.String(), Type: "course"})
	require.NoError(t, err)

	parsed, err := svc.ParseCourseQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, courseID, parsed)
}

func TestQRCodeService_ParseCourseQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	cases := []struct {
		name   string
		qrData string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"course_id":"` + uuid.NewString() + `","type":"profile"}`},
		{"bad uuid", `{"course_id":"not-a-uuid","type":"course"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ParseCourseQR(tc.qrData)
			assert.Error(t, err)
		})
	}
}

func TestNewQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateCourseQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

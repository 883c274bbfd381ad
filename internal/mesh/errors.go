package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/objmesh/pkg/formats"
)

// atFace stamps the face index and source line onto a stage error.
func atFace(err error, face formats.OBJFace, index int) error {
	var objErr *formats.OBJError
	if !errors.As(err, &objErr) {
		return fmt.Errorf("face %d: %w", index, err)
	}
	located := *objErr
	located.Face = index
	located.Line = face.Line
	return &located
}

// withDetail prefixes the detail of a stage error.
func withDetail(err error, prefix string) error {
	var objErr *formats.OBJError
	if !errors.As(err, &objErr) {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	detailed := *objErr
	if detailed.Detail == "" {
		detailed.Detail = prefix
	} else {
		detailed.Detail = prefix + ": " + detailed.Detail
	}
	return &detailed
}

func arityDetail(n int) string {
	return fmt.Sprintf("%d corners (want 3 or 4)", n)
}

func formatRange(table string, index, size int) string {
	return fmt.Sprintf("%s %d (table has %d)", table, index, size)
}

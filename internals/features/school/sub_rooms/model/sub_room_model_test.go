// file: internals/features/school/sub_rooms/model/sub_room_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HasClass gates which classes a proposal may attach to an existing
// sub-room, both on create and when the class is changed later.
func TestHasClass(t *testing.T) {
	classA := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	classB := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	classC := uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc")

	tests := []struct {
		name    string
		classes pq.StringArray
		classID uuid.UUID
		want    bool
	}{
		{"member", pq.StringArray{classA.String(), classB.String()}, classA, true},
		{"second member", pq.StringArray{classA.String(), classB.String()}, classB, true},
		{"non-member", pq.StringArray{classA.String(), classB.String()}, classC, false},
		{"empty list", pq.StringArray{}, classA, false},
		{"nil list", nil, classA, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := SubRoomModel{SubRoomClassIDs: tt.classes}
			if got := sr.HasClass(tt.classID); got != tt.want {
				t.Errorf("HasClass(%s) = %v, want %v", tt.classID, got, tt.want)
			}
		})
	}
}

package dto

import (
	"testing"

	"github.com/google/uuid"
)

func strp(s string) *string { return &s }

func TestCreateStudentRequestToModel(t *testing.T) {
	req := CreateStudentRequest{
		StudentFirstName:      "Ankita",
		StudentLastName:       "Das",
		StudentEmail:          strp("ankita@example.com"),
		StudentEnrollmentDate: "2024-04-01",
		StudentFeeCycle:       "monthly",
		StudentFeeAmount:      1500,
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel() error: %v", err)
	}
	if m.StudentFirstName != "Ankita" || m.StudentLastName != "Das" {
		t.Errorf("name = %q %q", m.StudentFirstName, m.StudentLastName)
	}
	if m.StudentEnrollmentDate.Format("2006-01-02") != "2024-04-01" {
		t.Errorf("StudentEnrollmentDate = %s", m.StudentEnrollmentDate)
	}
	if m.StudentPhone != nil {
		t.Errorf("StudentPhone = %v, want nil", m.StudentPhone)
	}
}

func TestCreateStudentRequestBadEnrollmentDate(t *testing.T) {
	req := CreateStudentRequest{
		StudentFirstName:      "Ankita",
		StudentLastName:       "Das",
		StudentEnrollmentDate: "01/04/2024",
		StudentFeeCycle:       "monthly",
		StudentFeeAmount:      1500,
	}
	if _, err := req.ToModel(); err == nil {
		t.Error("ToModel() error = nil, want parse error")
	}
}

func TestUpdateStudentRequestApplyTo(t *testing.T) {
	t.Run("empty request patches nothing", func(t *testing.T) {
		if patch := (UpdateStudentRequest{}).ApplyTo(); len(patch) != 0 {
			t.Errorf("ApplyTo() = %v, want empty", patch)
		}
	})

	t.Run("set fields land in the patch", func(t *testing.T) {
		batchID := uuid.New()
		amount := 2000.0
		req := UpdateStudentRequest{
			StudentPhone:     strp("9876543210"),
			StudentBatchID:   &batchID,
			StudentFeeAmount: &amount,
		}
		patch := req.ApplyTo()
		if len(patch) != 3 {
			t.Fatalf("ApplyTo() has %d entries: %v", len(patch), patch)
		}
		if patch["student_phone"] != "9876543210" {
			t.Errorf("student_phone = %v", patch["student_phone"])
		}
		if patch["student_batch_id"] != batchID {
			t.Errorf("student_batch_id = %v", patch["student_batch_id"])
		}
		if patch["student_fee_amount"] != 2000.0 {
			t.Errorf("student_fee_amount = %v", patch["student_fee_amount"])
		}
	})

	t.Run("clearing a contact field with empty string", func(t *testing.T) {
		req := UpdateStudentRequest{StudentAddress: strp("")}
		patch := req.ApplyTo()
		if v, ok := patch["student_address"]; !ok || v != "" {
			t.Errorf("student_address = %v (present=%v), want empty string", v, ok)
		}
	})
}

package dataprocessing

import (
	"alveocli/pkg/contracts/domain"
)

// AlignedBatch is a batch of records proven to share one column schema.
// The only way to obtain a non-trivial AlignedBatch is a successful
// Align call, which makes align-before-export a precondition the type
// system enforces rather than caller discipline.
type AlignedBatch struct {
	records []domain.TestData
}

// Records returns the aligned records in batch order.
func (b AlignedBatch) Records() []domain.TestData {
	return b.records
}

// Len returns the number of records in the batch.
func (b AlignedBatch) Len() int {
	return len(b.records)
}

// Schema returns the ordered header sequence shared by every record in
// the batch, nil for an empty batch.
func (b AlignedBatch) Schema() []string {
	if len(b.records) == 0 {
		return nil
	}
	return b.records[0].Headers()
}

// Align validates that every record shares the header sequence of the
// first record, in content and in order. The check runs over the whole
// batch before anything is written, so a mismatch means nothing reaches
// the output file. An empty batch aligns trivially.
func Align(records []domain.TestData) (AlignedBatch, error) {
	if len(records) == 0 {
		return AlignedBatch{}, nil
	}

	schema := records[0].Headers()
	for i := 1; i < len(records); i++ {
		if err := matchSchema(schema, records[i], i); err != nil {
			return AlignedBatch{}, err
		}
	}

	return AlignedBatch{records: records}, nil
}

func matchSchema(schema []string, record domain.TestData, index int) error {
	headers := record.Headers()
	if len(headers) != len(schema) {
		return &SchemaMismatchError{
			Expected:    schema,
			Found:       headers,
			RecordIndex: index,
			TestName:    record.TestName,
		}
	}
	for c, header := range headers {
		if header != schema[c] {
			return &SchemaMismatchError{
				Expected:    schema,
				Found:       headers,
				RecordIndex: index,
				TestName:    record.TestName,
			}
		}
	}
	return nil
}

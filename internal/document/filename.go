package document

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// ExportFilename builds the download filename for a record:
// "{firstName}_{lastName}.docx", with Resume/Template defaults when the name
// fields are blank.
func ExportFilename(record *types.ResumeRecord) string {
	first := record.PersonalInfo.FirstName
	if first == "" {
		first = "Resume"
	}
	last := record.PersonalInfo.LastName
	if last == "" {
		last = "Template"
	}
	return fmt.Sprintf("%s_%s.docx", first, last)
}

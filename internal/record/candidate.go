package record

import "fmt"

// candidateContainerKeys locate the sub-record holding the person behind
// an application. First match wins; when none is present the record
// itself is treated as the candidate.
var candidateContainerKeys = []string{
	"candidato",
	"candidate",
	"usuario",
	"user",
	"postulante",
	"applicant",
	"perfil",
	"profile",
	"aspirante",
	"persona",
}

// candidateIDKeys locate the candidate's identifier, probed first on the
// candidate sub-record and then on the application record itself.
var candidateIDKeys = []string{
	"id",
	"candidato_id",
	"candidate_id",
	"usuario_id",
	"user_id",
	"postulante_id",
	"applicant_id",
}

// recordIDKeys locate the application record's own identifier.
var recordIDKeys = []string{
	"id",
	"postulacion_id",
	"application_id",
	"pk",
}

// CandidateRef resolves the sub-record representing the person. When no
// container key holds an object, the record itself is the candidate.
func CandidateRef(r Record) Record {
	if ref := ResolveMap(r, candidateContainerKeys...); ref != nil {
		return ref
	}
	return r
}

// CandidateID resolves the candidate's canonical id, probing the
// candidate sub-record before falling back to the application record.
func CandidateID(r Record) ID {
	if id := CoerceID(Resolve(CandidateRef(r), candidateIDKeys...)); !id.IsZero() {
		return id
	}
	return CoerceID(Resolve(r, candidateIDKeys...))
}

// Slug derives a stable string identifier for an application record from
// its id, falling back to its position in the fetched list.
func Slug(r Record, position int) string {
	if id := CoerceID(Resolve(r, recordIDKeys...)); !id.IsZero() {
		return "app-" + id.Key()
	}
	return fmt.Sprintf("app-pos-%d", position)
}

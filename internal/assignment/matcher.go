// Package assignment decides whether a vacancy is assigned to a given HR
// user. The backend has no authoritative assignment schema, so the
// matcher scans a wide, fixed set of speculative field names. The key
// lists are the behavioral contract; do not "clean them up".
package assignment

import (
	"strings"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

// flatEmailKeys may hold an assignee email string directly on the record.
var flatEmailKeys = []string{
	"rrhh_email",
	"email_rrhh",
	"recruiter_email",
	"asignado_email",
	"email_asignado",
	"responsable_email",
	"email_responsable",
	"assigned_email",
}

// flatIDKeys may hold an assignee id directly on the record.
var flatIDKeys = []string{
	"rrhh_id",
	"id_rrhh",
	"recruiter_id",
	"asignado_id",
	"id_asignado",
	"responsable_id",
	"assigned_to",
	"usuario_asignado_id",
}

// nestedAssigneeKeys may hold an assignee object or a list of them.
var nestedAssigneeKeys = []string{
	"rrhh",
	"recruiter",
	"reclutador",
	"asignado",
	"responsable",
	"encargado",
	"usuario_asignado",
	"assigned_user",
}

// collectionKeys may hold a collection of assignment objects.
var collectionKeys = []string{
	"asignaciones",
	"assignments",
	"asignados",
	"assigned_users",
	"usuarios_asignados",
	"responsables",
}

// IsAssignedToUser reports whether the vacancy record resolves to the
// given user by email (case-insensitive) or by id. Best-effort and
// intentionally permissive; no match means not assigned.
func IsAssignedToUser(r record.Record, userID record.ID, userEmail string) bool {
	emails, ids := assigneeSets(r)

	email := strings.ToLower(strings.TrimSpace(userEmail))
	if email != "" && emails[email] {
		return true
	}
	if !userID.IsZero() && ids[userID.Key()] {
		return true
	}
	return false
}

// assigneeSets builds the email and id sets from the four field classes.
func assigneeSets(r record.Record) (emails map[string]bool, ids map[string]bool) {
	emails = map[string]bool{}
	ids = map[string]bool{}

	for _, key := range flatEmailKeys {
		if s, ok := r[key].(string); ok {
			addEmail(emails, s)
		}
	}
	for _, key := range flatIDKeys {
		if id := record.CoerceID(r[key]); !id.IsZero() {
			ids[id.Key()] = true
		}
	}
	for _, key := range nestedAssigneeKeys {
		collect(r[key], emails, ids)
	}
	for _, key := range collectionKeys {
		collect(r[key], emails, ids)
	}
	return emails, ids
}

// collect extracts emails and ids from a loose value: strings containing
// "@" count as emails, numbers as ids, objects are probed for their
// email/id fields (including a nested "user" object), arrays recurse.
func collect(v interface{}, emails, ids map[string]bool) {
	switch t := v.(type) {
	case string:
		addEmail(emails, t)
	case float64:
		if id := record.CoerceID(t); !id.IsZero() {
			ids[id.Key()] = true
		}
	case []interface{}:
		for _, el := range t {
			collect(el, emails, ids)
		}
	case map[string]interface{}:
		obj := record.Record(t)
		addEmail(emails, record.ResolveString(obj, "email", "correo", "user_email"))
		if id := record.CoerceID(record.Resolve(obj, "id")); !id.IsZero() {
			ids[id.Key()] = true
		}
		if user := record.ResolveMap(obj, "user", "usuario"); user != nil {
			addEmail(emails, record.ResolveString(user, "email", "correo"))
			if id := record.CoerceID(record.Resolve(user, "id")); !id.IsZero() {
				ids[id.Key()] = true
			}
		}
	}
}

func addEmail(emails map[string]bool, s string) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s != "" && strings.Contains(s, "@") {
		emails[s] = true
	}
}

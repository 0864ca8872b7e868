package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route pattern and method.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Open is true when the route needs no role check. Routes without roles are open.
func (p Permission) Open() bool {
	return p.Skip || len(p.Permissions) == 0
}

func (p Permission) Allows(role string) bool {
	return p.Open() || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the entry for a route pattern, or the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r == nil {
		return Permission{}
	}

	path = strings.TrimSuffix(path, "/")

	for _, endpoint := range r.Endpoints {
		// chi reports "/x" and "/x/" for the same subrouter root
		if endpoint.Method == method && strings.TrimSuffix(endpoint.Path, "/") == path {
			return endpoint
		}
	}

	return Permission{}
}

// Get decodes the embedded route table. A broken table yields nil, which the
// auth middleware treats as deny-all.
func Get() *PermissionData {
	var data PermissionData

	if err := json.Unmarshal(permissionsData, &data); err != nil {
		log.Error().Err(err).Msg("failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Bool("skip", data.Skip).Msg("route permissions loaded")

	return &data
}

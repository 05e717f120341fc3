package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"gardenbook/entities"
	"gardenbook/pkg/exportimport/repository"
	"gardenbook/pkg/exportimport/types"
)

var errUnknownRecord = errors.New("unknown record type")

// SchemaCompatible reports whether version shares the current major version.
func SchemaCompatible(version string) bool {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return false
	}
	return semver.Major(v) == semver.Major("v"+types.SchemaVersion)
}

// validate inspects snap without writing anything. Storage is only read for
// catalog lookups and, in overwrite mode, the would-delete count.
func validate(ctx context.Context, store repository.Store, uid string, snap *types.Snapshot, mode types.Mode) (*types.Preview, error) {
	p := &types.Preview{
		Mode:                 mode,
		SchemaVersion:        snap.Metadata.SchemaVersion,
		CurrentSchemaVersion: types.SchemaVersion,
		SchemaCompatible:     SchemaCompatible(snap.Metadata.SchemaVersion),
		Issues:               []types.Issue{},
	}
	if !p.SchemaCompatible {
		p.Issues = append(p.Issues, types.Issue{
			Severity: types.SeverityWarning,
			Kind:     types.IssueSchemaVersion,
			Message: fmt.Sprintf("%v: snapshot is %q, this server writes %q",
				types.ErrSchemaIncompatible, snap.Metadata.SchemaVersion, types.SchemaVersion),
		})
	}

	// pass 1: ids per collection
	ids := map[types.EntityType]map[uint]bool{}
	for _, t := range types.DependencyOrder {
		seen := map[uint]bool{}
		for _, r := range snap.Collection(t) {
			id := r.LocalID()
			switch {
			case id == 0:
				p.Issues = append(p.Issues, issue(types.SeverityError, types.IssueInvalidID, t, 0, "id", "record has no id"))
			case seen[id]:
				p.Issues = append(p.Issues, issue(types.SeverityError, types.IssueDuplicateID, t, id, "id",
					fmt.Sprintf("id %d appears more than once", id)))
			}
			seen[id] = true
		}
		ids[t] = seen
	}

	// pass 2: fields and references
	plantRefs := map[uint][]uint{}
	for _, t := range types.DependencyOrder {
		for _, r := range snap.Collection(t) {
			id := r.LocalID()
			if err := checkRecord(r); err != nil {
				field := ""
				var fe *entities.FieldError
				if errors.As(err, &fe) {
					field = fe.Field
				}
				p.Issues = append(p.Issues, issue(types.SeverityError, types.IssueInvalidField, t, id, field, err.Error()))
			}
			for _, ref := range r.References() {
				if ids[ref.To][ref.ID] {
					continue
				}
				if ref.Required {
					p.Issues = append(p.Issues, issue(types.SeverityError, types.IssueMissingReference, t, id, ref.Field,
						fmt.Sprintf("%v: %s %d is not in the snapshot", types.ErrReferentialIntegrity, ref.To, ref.ID)))
				} else {
					p.Issues = append(p.Issues, issue(types.SeverityWarning, types.IssueMissingReference, t, id, ref.Field,
						fmt.Sprintf("%s %d is not in the snapshot; the reference will be cleared", ref.To, ref.ID)))
				}
			}
			if pe, ok := r.(types.PlantingEventRecord); ok && pe.PlantID != 0 {
				plantRefs[pe.PlantID] = append(plantRefs[pe.PlantID], id)
			}
		}
	}

	// pass 3: garden placement against lands in the same snapshot
	lands := map[uint]*entities.Land{}
	for _, r := range snap.Lands {
		if _, dup := lands[r.ID]; dup {
			continue
		}
		if l, err := landEntity(r); err == nil {
			lands[r.ID] = l
		}
	}
	for _, r := range snap.Gardens {
		if r.LandID == nil || lands[*r.LandID] == nil {
			continue
		}
		g, err := gardenEntity(r)
		if err != nil {
			continue
		}
		if err := g.FitsOn(lands[*r.LandID]); err != nil {
			field := ""
			var fe *entities.FieldError
			if errors.As(err, &fe) {
				field = fe.Field
			}
			p.Issues = append(p.Issues, issue(types.SeverityError, types.IssueInvalidField, types.Gardens, r.ID, field, err.Error()))
		}
	}

	if len(plantRefs) > 0 {
		want := make([]uint, 0, len(plantRefs))
		for pid := range plantRefs {
			want = append(want, pid)
		}
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		found, err := store.ExistingPlantIDs(ctx, want)
		if err != nil {
			return nil, types.StorageError("catalog lookup", err)
		}
		for _, pid := range want {
			if found[pid] {
				continue
			}
			for _, id := range plantRefs[pid] {
				p.Issues = append(p.Issues, issue(types.SeverityError, types.IssueMissingCatalog, types.PlantingEvents, id, "plant_id",
					fmt.Sprintf("plant %d is not in the catalog", pid)))
			}
		}
	}

	p.Counts = snap.Counts()
	p.TotalItems = p.Counts.Total()

	if mode == types.ModeOverwrite {
		existing, err := store.CountOwned(ctx, uid)
		if err != nil {
			return nil, types.StorageError("count existing", err)
		}
		n := existing.Total()
		p.WouldDelete = &n
		p.WouldDeleteByType = existing
	}

	p.Valid = p.ErrorCount() == 0
	return p, nil
}

func issue(sev types.Severity, kind types.IssueKind, t types.EntityType, id uint, field, msg string) types.Issue {
	return types.Issue{Severity: sev, Kind: kind, Entity: t, ID: id, Field: field, Message: msg}
}

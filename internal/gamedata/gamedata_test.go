package gamedata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samdwyer/dungeonrun/internal/errors"
)

func TestLoadTopology(t *testing.T) {
	topo, err := LoadTopology()
	if err != nil {
		t.Fatalf("Failed to load topology: %v", err)
	}

	if len(topo.Rooms) != 6 {
		t.Errorf("Expected 6 rooms, got %d", len(topo.Rooms))
	}
	if len(topo.Edges) != 6 {
		t.Errorf("Expected 6 edges, got %d", len(topo.Edges))
	}

	wantKinds := []RoomKind{RoomEntry, RoomMurky, RoomMurky, RoomMurky, RoomMurky, RoomExit}
	for i, r := range topo.Rooms {
		if r.ID != i {
			t.Errorf("Room %d has id %d", i, r.ID)
		}
		if r.Kind != wantKinds[i] {
			t.Errorf("Room %d kind = %q, want %q", i, r.Kind, wantKinds[i])
		}
	}
	if topo.Rooms[1].Monster != "Beelzebub" {
		t.Errorf("Room 1 monster = %q, want Beelzebub", topo.Rooms[1].Monster)
	}

	wantEdges := []Edge{{0, 1}, {1, 2}, {2, 3}, {2, 4}, {3, 4}, {4, 5}}
	for i, e := range topo.Edges {
		if e != wantEdges[i] {
			t.Errorf("Edge %d = %v, want %v", i, e, wantEdges[i])
		}
	}
}

func TestTopologyValidate(t *testing.T) {
	tests := []struct {
		name    string
		topo    Topology
		wantErr string
	}{
		{
			name: "valid minimal",
			topo: Topology{
				Rooms: []RoomDef{{ID: 0, Kind: RoomEntry}, {ID: 1, Kind: RoomExit}},
				Edges: []Edge{{0, 1}},
			},
		},
		{
			name:    "empty",
			topo:    Topology{},
			wantErr: "at least one room is required",
		},
		{
			name: "no entry",
			topo: Topology{
				Rooms: []RoomDef{{ID: 1, Kind: RoomExit}},
			},
			wantErr: "exactly one entry room is required, found 0",
		},
		{
			name: "no exit",
			topo: Topology{
				Rooms: []RoomDef{{ID: 0, Kind: RoomEntry}},
			},
			wantErr: "at least one exit room is required",
		},
		{
			name: "duplicate id",
			topo: Topology{
				Rooms: []RoomDef{{ID: 0, Kind: RoomEntry}, {ID: 0, Kind: RoomExit}},
			},
			wantErr: "duplicate room id 0",
		},
		{
			name: "unknown kind",
			topo: Topology{
				Rooms: []RoomDef{{ID: 0, Kind: RoomEntry}, {ID: 1, Kind: "closet"}, {ID: 2, Kind: RoomExit}},
			},
			wantErr: `room 1 has unknown kind "closet"`,
		},
		{
			name: "murky without monster",
			topo: Topology{
				Rooms: []RoomDef{{ID: 0, Kind: RoomEntry}, {ID: 1, Kind: RoomMurky}, {ID: 2, Kind: RoomExit}},
			},
			wantErr: "room 1 needs a monster name",
		},
		{
			name: "dangling edge",
			topo: Topology{
				Rooms: []RoomDef{{ID: 0, Kind: RoomEntry}, {ID: 1, Kind: RoomExit}},
				Edges: []Edge{{0, 9}},
			},
			wantErr: "edge 0->9 ends at unknown room",
		},
	}

	for _, tt := range tests {
		err := tt.topo.Validate()
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: Validate() unexpected error: %v", tt.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: Validate() expected error containing %q", tt.name, tt.wantErr)
			continue
		}
		if !errors.IsInvalidArgument(err) {
			t.Errorf("%s: Validate() code = %s, want INVALID_ARGUMENT", tt.name, errors.GetCode(err))
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: Validate() = %q, want it to contain %q", tt.name, err.Error(), tt.wantErr)
		}
	}
}

func TestLoadTopologyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.json")
	content := `{"rooms":[{"id":0,"kind":"entry"},{"id":1,"kind":"treasure"},{"id":2,"kind":"exit"}],"edges":[[0,1],[1,2]]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	topo, err := LoadTopologyFile(path)
	if err != nil {
		t.Fatalf("LoadTopologyFile() error: %v", err)
	}
	if len(topo.Rooms) != 3 || topo.Rooms[1].Kind != RoomTreasure {
		t.Errorf("unexpected topology: %+v", topo)
	}

	if _, err := LoadTopologyFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadTopologyFile() on missing file should fail")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"rooms":[]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTopologyFile(bad); !errors.IsInvalidArgument(err) {
		t.Errorf("LoadTopologyFile() on empty layout = %v, want INVALID_ARGUMENT", err)
	}
}

func TestLoaderErrorCodes(t *testing.T) {
	if _, err := Load[Topology]("nope.json"); !errors.IsNotFound(err) {
		t.Errorf("Load() of missing embedded file = %v, want NOT_FOUND", err)
	}

	dir := t.TempDir()
	if _, err := LoadFile[Topology](filepath.Join(dir, "missing.json")); !errors.IsNotFound(err) {
		t.Errorf("LoadFile() of missing file = %v, want NOT_FOUND", err)
	}

	tests := []struct {
		name    string
		content string
	}{
		{"not json", `rooms: []`},
		{"unknown field", `{"rooms":[{"id":0,"kind":"entry","boss":true}],"edges":[]}`},
		{"wrong type", `{"rooms":"many","edges":[]}`},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile[Topology](path); !errors.IsInvalidArgument(err) {
			t.Errorf("%s: LoadFile() = %v, want INVALID_ARGUMENT", tt.name, err)
		}
	}
}

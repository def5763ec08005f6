package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/robot-alarm-clock/internal/config"
	domain "github.com/oshokin/robot-alarm-clock/internal/domain/robot"
	pb "github.com/oshokin/robot-alarm-clock/internal/pb/v1"
)

// Repository defines persistence operations for the simulator state.
type Repository interface {
	Load(ctx context.Context) (*domain.State, error)
	Save(ctx context.Context, state *domain.State) error
}

// FileRepository persists the simulator state to a JSON file.
// JSON is produced and consumed via protobuf JSON (protojson) so the file
// uses the same field names as the gRPC API.
type FileRepository struct {
	// fs is the filesystem holding the state file.
	fs afero.Fs
	// path is the location of the JSON state file on fs.
	path string
	// mu protects concurrent access to the state file.
	mu sync.Mutex
}

// ErrNotFound is returned when the state file does not exist yet.
var ErrNotFound = errors.New("state not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
// A nil fs means the operating system filesystem.
func NewFileRepository(fs afero.Fs, path string) *FileRepository {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &FileRepository{
		fs:   fs,
		path: filepath.Clean(path),
	}
}

// Path returns the location of the state file.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the state from the filesystem.
func (r *FileRepository) Load(_ context.Context) (*domain.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var protoState pb.RobotState
	if err = protojson.Unmarshal(contents, &protoState); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	return fromProto(&protoState), nil
}

// Save writes the state to the filesystem using JSON representation.
func (r *FileRepository) Save(_ context.Context, state *domain.State) error {
	if state == nil {
		return errors.New("state is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		protoState     = toProto(state)
		marshalOptions = protojson.MarshalOptions{
			Multiline:       true,
			EmitUnpopulated: true,
		}
	)

	data, err := marshalOptions.Marshal(protoState)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err = r.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
	}

	if err = afero.WriteFile(r.fs, r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// fromProto converts protobuf RobotState into the domain State model.
func fromProto(protoState *pb.RobotState) *domain.State {
	status := protoState.GetStatus()

	return &domain.State{
		Timestamp: asTime(protoState.GetTimestamp()),
		Status: domain.Status{
			IsOnCharger:  status.GetIsOnCharger(),
			LiftHeightMM: status.GetLiftHeightMm(),
			HeadAngleDeg: status.GetHeadAngleDeg(),
		},
		LeftWheelMMPS:  protoState.GetLeftWheelMmps(),
		RightWheelMMPS: protoState.GetRightWheelMmps(),
		WheelsSince:    asTime(protoState.GetWheelsSince()),
		Face:           protoState.GetFace(),
		FaceUntil:      asTime(protoState.GetFaceUntil()),
	}
}

// toProto converts the domain State model into protobuf RobotState.
func toProto(state *domain.State) *pb.RobotState {
	return &pb.RobotState{
		Timestamp: asTimestamp(state.Timestamp),
		Status: &pb.StatusResponse{
			IsOnCharger:  state.Status.IsOnCharger,
			LiftHeightMm: state.Status.LiftHeightMM,
			HeadAngleDeg: state.Status.HeadAngleDeg,
		},
		LeftWheelMmps:  state.LeftWheelMMPS,
		RightWheelMmps: state.RightWheelMMPS,
		WheelsSince:    asTimestamp(state.WheelsSince),
		Face:           state.Face,
		FaceUntil:      asTimestamp(state.FaceUntil),
	}
}

// asTimestamp leaves zero times unset so they survive a round trip as zero.
func asTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}

	return timestamppb.New(t)
}

func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}

	return ts.AsTime()
}

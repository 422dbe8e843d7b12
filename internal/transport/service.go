package transport

import (
	"errors"
	"log/slog"
	"maps"
	"slices"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/cxm940188/kafka-ui/api/proto/v1"
	"github.com/cxm940188/kafka-ui/internal/cursorstore"
	"github.com/cxm940188/kafka-ui/internal/emitter"
	"github.com/cxm940188/kafka-ui/internal/logging"
	"github.com/cxm940188/kafka-ui/internal/query"
	"github.com/cxm940188/kafka-ui/source/kafka"
)

// Service streams tail runs to gRPC callers. Every call owns one run and one
// log connection; the run stops when the caller goes away.
type Service struct {
	pb.UnimplementedTailServer

	connect emitter.Connector
	polling kafka.PollingCfg
	store   cursorstore.Store
	rec     emitter.Recorder
	log     *slog.Logger
	buffer  int
}

type ServiceOption func(*Service)

func WithRecorder(r emitter.Recorder) ServiceOption { return func(s *Service) { s.rec = r } }

func WithLogger(l *slog.Logger) ServiceOption { return func(s *Service) { s.log = l } }

// WithBuffer sizes the event channel between a run and the stream.
func WithBuffer(n int) ServiceOption { return func(s *Service) { s.buffer = n } }

// NewService serves runs against connect. store may be nil, in which case
// cursors are returned inline but cannot be resumed by id.
func NewService(connect emitter.Connector, polling kafka.PollingCfg, store cursorstore.Store, opts ...ServiceOption) *Service {
	s := &Service{
		connect: connect,
		polling: polling,
		store:   store,
		rec:     emitter.NopRecorder{},
		log:     logging.L(),
		buffer:  64,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Tail runs the query carried by req and streams one TailEvent per event.
// DONE carries cursor_id when the cursor was stored.
func (s *Service) Tail(req *pb.TailRequest, stream grpc.ServerStreamingServer[pb.TailEvent]) error {
	ctx := stream.Context()
	b, err := queryFromRequest(req).Build(ctx, s.store, s.polling)
	if err != nil {
		return buildStatus(err)
	}

	em := emitter.Create(s.connect, b.Request,
		emitter.WithSettings(b.Settings),
		emitter.WithRecorder(s.rec),
		emitter.WithLogger(s.log.With("topic", b.Request.Position.Topic)),
	)
	sink := em.Stream(ctx, s.buffer)
	defer sink.Detach()

	for ev := range sink.Events() {
		var cursorID string
		if ev.Type == emitter.EventDone && ev.Done.Cursor != nil && s.store != nil {
			id, err := s.store.Put(ctx, b.Entry(ev.Done.Cursor))
			if err != nil {
				s.log.Warn("store cursor", "err", err)
			} else {
				cursorID = id
			}
		}
		if err := stream.Send(encodeEvent(ev, cursorID)); err != nil {
			s.log.Debug("client gone, detaching", "err", err)
			return err
		}
	}
	return nil
}

func buildStatus(err error) error {
	var ve *emitter.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, cursorstore.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, query.ErrNoStore):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.InvalidArgument, err.Error())
}

func queryFromRequest(req *pb.TailRequest) query.Query {
	q := query.Query{
		Topic:      req.GetTopic(),
		Direction:  req.GetDirection(),
		Mode:       req.GetMode(),
		Partitions: req.GetPartitions(),
		Offset:     req.Offset,
		Timestamp:  req.TimestampMs,
		Limit:      int(req.GetLimit()),
		Follow:     req.GetFollow(),
		Filter:     req.GetFilter(),
		Contains:   req.GetContains(),
		KeySerde:   req.GetKeySerde(),
		ValueSerde: req.GetValueSerde(),
		Resume:     req.GetResume(),
	}
	if offs := req.GetOffsets(); len(offs) > 0 {
		q.Offsets = make(map[int32]int64, len(offs))
		for _, po := range offs {
			q.Offsets[po.GetPartition()] = po.GetOffset()
		}
	}
	return q
}

func requestFromQuery(q query.Query) *pb.TailRequest {
	return &pb.TailRequest{
		Topic:       q.Topic,
		Direction:   q.Direction,
		Mode:        q.Mode,
		Partitions:  q.Partitions,
		Offset:      q.Offset,
		Offsets:     partitionOffsets(q.Offsets),
		TimestampMs: q.Timestamp,
		Limit:       int32(q.Limit),
		Follow:      q.Follow,
		Filter:      q.Filter,
		Contains:    q.Contains,
		KeySerde:    q.KeySerde,
		ValueSerde:  q.ValueSerde,
		Resume:      q.Resume,
	}
}

func partitionOffsets(m map[int32]int64) []*pb.PartitionOffset {
	out := make([]*pb.PartitionOffset, 0, len(m))
	for _, p := range slices.Sorted(maps.Keys(m)) {
		out = append(out, &pb.PartitionOffset{Partition: p, Offset: m[p]})
	}
	return out
}

func encodeEvent(ev emitter.Event, cursorID string) *pb.TailEvent {
	out := &pb.TailEvent{Type: string(ev.Type)}
	switch ev.Type {
	case emitter.EventPhase:
		out.Phase = ev.Phase
	case emitter.EventMessage:
		out.Message = encodeMessage(ev.Message)
	case emitter.EventDone:
		out.Done = encodeSummary(ev.Done)
		out.CursorId = cursorID
	case emitter.EventError:
		out.Error = ev.Err.Error()
		var ve *emitter.ValidationError
		var te *emitter.TransportError
		switch {
		case errors.As(ev.Err, &ve):
			out.ErrorKind = "validation"
		case errors.As(ev.Err, &te):
			out.ErrorKind = "transport"
		}
	}
	return out
}

func encodeMessage(msg *emitter.Message) *pb.TailMessage {
	headers := make([]*pb.Header, 0, len(msg.Headers))
	for _, k := range slices.Sorted(maps.Keys(msg.Headers)) {
		headers = append(headers, &pb.Header{Key: k, Value: msg.Headers[k]})
	}
	return &pb.TailMessage{
		Topic:       msg.Topic,
		Partition:   msg.Partition,
		Offset:      msg.Offset,
		TimestampMs: msg.Timestamp.UnixMilli(),
		Key:         msg.Key,
		Value:       msg.Value,
		Headers:     headers,
		KeySize:     int32(msg.KeySize),
		ValueSize:   int32(msg.ValueSize),
		KeyFormat:   msg.KeyFormat,
		ValueFormat: msg.ValueFormat,
	}
}

func encodeSummary(s *emitter.Summary) *pb.TailSummary {
	out := &pb.TailSummary{
		ElapsedMs:    s.Elapsed.Milliseconds(),
		Polls:        int64(s.Polls),
		Messages:     int64(s.Messages),
		BytesPolled:  s.BytesPolled,
		Filtered:     int64(s.Filtered),
		FilterErrors: int64(s.FilterErrors),
		Skipped:      int64(s.Skipped),
		Reason:       string(s.Reason),
	}
	if c := s.Cursor; c != nil {
		out.Cursor = &pb.TailCursor{
			Topic:     c.Topic,
			Direction: string(c.Direction),
			Next:      partitionOffsets(c.Next),
		}
	}
	return out
}

// Command tail runs one query file, locally or against a running engine.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/protobuf/encoding/protojson"

	pb "github.com/cxm940188/kafka-ui/api/proto/v1"
	"github.com/cxm940188/kafka-ui/internal/config"
	"github.com/cxm940188/kafka-ui/internal/logging"
	"github.com/cxm940188/kafka-ui/internal/pipeline"
	"github.com/cxm940188/kafka-ui/internal/transport"
)

func main() {
	file := flag.String("f", "tail.yml", "query file")
	remote := flag.String("remote", "", "engine gRPC address; runs locally when empty")
	resume := flag.String("resume", "", "cursor id to continue from (overrides tail.resume)")
	flag.Parse()

	logging.InitFromEnv()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	if *remote != "" {
		err = runRemote(ctx, *remote, *file, *resume)
	} else {
		err = runLocal(ctx, *file, *resume)
	}
	if err != nil {
		log.Fatalf("tail: %v", err)
	}
}

func runLocal(ctx context.Context, file, resume string) error {
	r, err := pipeline.Compile(file)
	if err != nil {
		return err
	}
	defer r.Close()
	if resume != "" {
		r.Resume(resume)
	}

	res, err := r.Run(ctx)
	if err != nil {
		return err
	}
	if res.CursorID != "" {
		fmt.Fprintf(os.Stderr, "more records available, continue with -resume %s\n", res.CursorID)
	}
	return nil
}

func runRemote(ctx context.Context, addr, file, resume string) error {
	f, _, err := config.LoadQueryFile(file)
	if err != nil {
		return err
	}
	if resume != "" {
		f.Tail.Resume = resume
	}
	c, err := transport.Dial(addr)
	if err != nil {
		return err
	}
	defer c.Close()

	out := json.NewEncoder(os.Stdout)
	return c.Tail(ctx, f.Tail, func(ev *pb.TailEvent) error {
		raw, err := protojson.Marshal(ev)
		if err != nil {
			return err
		}
		return out.Encode(json.RawMessage(raw))
	})
}

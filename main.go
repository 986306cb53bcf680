package main

import (
	"bytes"
	"fmt"
	"os"

	"go-base/config"
	"go-base/pkg/allocator"
	"go-base/pkg/allocator/heap"
	"go-base/pkg/platform"
	"go-base/pkg/types"
	"go-base/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func main() {
	configs, err := config.Load(viper.New())
	if err != nil {
		fatal(err)
	}
	if err := logger.SetLevel(configs.LogLevel); err != nil {
		fatal(err)
	}

	h, err := heap.New(&heap.Options{MaxAllocSize: configs.Allocator.MaxAllocSize})
	if err != nil {
		fatal(err)
	}

	log := logger.WithPrefix("base")
	ctx := platform.Current()
	log.WithFields(logrus.Fields{
		"compiler":       ctx.Compiler.String(),
		"os":             ctx.OS.String(),
		"arch":           ctx.Arch.String(),
		"max_alloc_size": h.MaxAllocSize(),
	}).Info("build context")

	if err := selfCheck(allocator.Bind(heap.Proc, h, 0)); err != nil {
		log.WithError(err).Error("allocator self check failed")
		os.Exit(1)
	}
	log.Info("allocator self check passed")
}

// selfCheck grows and shrinks a block through a and verifies the preserved
// prefix each time.
func selfCheck(a allocator.Allocator) error {
	const small, shrunkSize = 16, 8

	block := a.Allocate(small)
	if block == nil {
		return errors.Errorf("allocate %d bytes: exhausted", small)
	}
	want := make([]byte, small)
	for i := range want {
		want[i] = byte(i)
	}
	copy(block, want)

	grown := a.Resize(types.KB(1), small, block)
	if grown == nil {
		a.Free(block)
		return errors.Errorf("resize %d -> %d: exhausted", small, types.KB(1))
	}
	if !bytes.Equal(grown[:small], want) {
		a.Free(grown)
		return errors.New("resize lost the block prefix while growing")
	}

	shrunk := a.Resize(shrunkSize, types.KB(1), grown)
	if shrunk == nil {
		a.Free(grown)
		return errors.Errorf("resize %d -> %d: exhausted", types.KB(1), shrunkSize)
	}
	defer a.Free(shrunk)
	if !bytes.Equal(shrunk, want[:shrunkSize]) {
		return errors.New("resize lost the block prefix while shrinking")
	}
	return nil
}

func fatal(val interface{}) {
	fmt.Println(val)
	os.Exit(1)
}

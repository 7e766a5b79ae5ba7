package slices

import (
	"fmt"

	"github.com/dmitrymomot/gokit/pkg/op"
	"github.com/dmitrymomot/gokit/pkg/outcome"
)

// CodeInvalidChunkSize identifies a chunk call with a non-positive size.
const CodeInvalidChunkSize outcome.Code = "invalid_size"

const condInvalidSize op.Condition = "invalid_size"

// ChunkOptions configures Chunk. The zero size is normalized away by the
// default of 1.
type ChunkOptions struct {
	Size int
}

// ChunkSize sets the chunk length, the operation's primary option.
func ChunkSize(n int) op.Option[ChunkOptions] {
	return func(o *ChunkOptions) { o.Size = n }
}

// chunkResolver is the single error-construction point for the operation.
var chunkResolver = op.NewResolver(
	ChunkOptions{Size: 1},
	func(o ChunkOptions, c op.Condition) (outcome.Code, string, map[string]any) {
		return CodeInvalidChunkSize,
			fmt.Sprintf("chunk size must be a positive integer, got %d", o.Size),
			map[string]any{"size": o.Size}
	},
)

func chunkOp[T any]() op.Op[[]T, [][]T, ChunkOptions] {
	return op.Define(chunkResolver, func(data []T, o ChunkOptions) ([][]T, *outcome.Error) {
		if o.Size < 1 {
			return nil, chunkResolver.Fail(o, condInvalidSize)
		}
		chunks := make([][]T, 0, (len(data)+o.Size-1)/o.Size)
		for i := 0; i < len(data); i += o.Size {
			end := min(i+o.Size, len(data))
			chunks = append(chunks, data[i:end:end])
		}
		return chunks, nil
	})
}

// Chunk splits data into consecutive runs of the configured size (default 1).
// The final chunk holds the remainder when the length is not a multiple of
// the size. Returns an error with code CodeInvalidChunkSize for sizes < 1.
func Chunk[T any](data []T, opts ...op.Option[ChunkOptions]) ([][]T, error) {
	return chunkOp[T]().Call(data, opts...)
}

// TryChunk is Chunk with the failure captured in an Outcome instead of an
// error return.
func TryChunk[T any](data []T, opts ...op.Option[ChunkOptions]) outcome.Outcome[[][]T] {
	return chunkOp[T]().Try(data, opts...)
}

// ChunkWith returns the curried form of Chunk with the options captured:
// ChunkWith[T](opts...)(data) is equivalent to Chunk(data, opts...).
func ChunkWith[T any](opts ...op.Option[ChunkOptions]) func([]T) ([][]T, error) {
	return chunkOp[T]().Bind(opts...)
}

// TryChunkWith returns the curried form of TryChunk.
func TryChunkWith[T any](opts ...op.Option[ChunkOptions]) func([]T) outcome.Outcome[[][]T] {
	return chunkOp[T]().TryBind(opts...)
}

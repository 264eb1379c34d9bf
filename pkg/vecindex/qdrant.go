package vecindex

import (
	"context"
	"fmt"

	qpb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Config represents configuration for the Qdrant adapter
type Config struct {
	Addr string `json:"addr"` // gRPC listen address, e.g. localhost:6334
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{Addr: "localhost:6334"}
}

// Qdrant talks to a Qdrant server over gRPC.
type Qdrant struct {
	conn        *grpc.ClientConn
	points      qpb.PointsClient
	collections qpb.CollectionsClient
}

// Dial connects to Qdrant.
func Dial(config Config) (*Qdrant, error) {
	conn, err := grpc.NewClient(config.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("qdrant dial %s: %w", config.Addr, err)
	}
	return &Qdrant{
		conn:        conn,
		points:      qpb.NewPointsClient(conn),
		collections: qpb.NewCollectionsClient(conn),
	}, nil
}

// Close releases the gRPC connection.
func (q *Qdrant) Close() error {
	return q.conn.Close()
}

// EnsureCollections creates the word-root and standard-field collections
// if they do not exist yet: 384-dimensional vectors, cosine distance.
func (q *Qdrant) EnsureCollections(ctx context.Context) error {
	for _, name := range []string{CollectionWordRoots, CollectionStandardFields} {
		resp, err := q.collections.CollectionExists(ctx,
			&qpb.CollectionExistsRequest{CollectionName: name})
		if err != nil {
			return fmt.Errorf("qdrant collection_exists %s: %w", name, err)
		}
		if resp.GetResult().GetExists() {
			continue
		}
		_, err = q.collections.Create(ctx, &qpb.CreateCollection{
			CollectionName: name,
			VectorsConfig: &qpb.VectorsConfig{
				Config: &qpb.VectorsConfig_Params{
					Params: &qpb.VectorParams{
						Size:     VectorDim,
						Distance: qpb.Distance_Cosine,
					},
				},
			},
		})
		if err != nil {
			return fmt.Errorf("qdrant create collection %s: %w", name, err)
		}
	}
	return nil
}

// Upsert writes points into a collection, replacing by id.
func (q *Qdrant) Upsert(ctx context.Context, collection string, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	structs := make([]*qpb.PointStruct, 0, len(points))
	for _, p := range points {
		structs = append(structs, &qpb.PointStruct{
			Id: pointID(p.ID),
			Vectors: &qpb.Vectors{
				VectorsOptions: &qpb.Vectors_Vector{
					Vector: &qpb.Vector{
						Vector: &qpb.Vector_Dense{
							Dense: &qpb.DenseVector{Data: p.Vector},
						},
					},
				},
			},
			Payload: encodePayload(p.Payload),
		})
	}

	_, err := q.points.Upsert(ctx, &qpb.UpsertPoints{
		CollectionName: collection,
		Points:         structs,
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert %s: %w", collection, err)
	}
	return nil
}

// DeleteByIDs removes points by their relational ids.
func (q *Qdrant) DeleteByIDs(ctx context.Context, collection string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	pids := make([]*qpb.PointId, 0, len(ids))
	for _, id := range ids {
		pids = append(pids, pointID(id))
	}

	_, err := q.points.Delete(ctx, &qpb.DeletePoints{
		CollectionName: collection,
		Points: &qpb.PointsSelector{
			PointsSelectorOneOf: &qpb.PointsSelector_Points{
				Points: &qpb.PointsIdsList{Ids: pids},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("qdrant delete %s: %w", collection, err)
	}
	return nil
}

// DeleteAll removes every point in a collection. An empty filter
// selector matches all points.
func (q *Qdrant) DeleteAll(ctx context.Context, collection string) error {
	_, err := q.points.Delete(ctx, &qpb.DeletePoints{
		CollectionName: collection,
		Points: &qpb.PointsSelector{
			PointsSelectorOneOf: &qpb.PointsSelector_Filter{
				Filter: &qpb.Filter{},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("qdrant delete all %s: %w", collection, err)
	}
	return nil
}

// Search returns the top nearest neighbors with payloads.
func (q *Qdrant) Search(ctx context.Context, collection string, vector []float32, limit int) ([]Hit, error) {
	resp, err := q.points.Search(ctx, &qpb.SearchPoints{
		CollectionName: collection,
		Vector:         vector,
		Limit:          uint64(limit),
		WithPayload: &qpb.WithPayloadSelector{
			SelectorOptions: &qpb.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant search %s: %w", collection, err)
	}

	hits := make([]Hit, 0, len(resp.Result))
	for _, p := range resp.Result {
		hits = append(hits, Hit{
			ID:      int64(p.GetId().GetNum()),
			Score:   p.GetScore(),
			Payload: decodePayload(p.GetPayload()),
		})
	}
	return hits, nil
}

func pointID(id int64) *qpb.PointId {
	return &qpb.PointId{PointIdOptions: &qpb.PointId_Num{Num: uint64(id)}}
}

func encodePayload(payload map[string]string) map[string]*qpb.Value {
	if len(payload) == 0 {
		return nil
	}
	out := make(map[string]*qpb.Value, len(payload))
	for k, v := range payload {
		out[k] = &qpb.Value{Kind: &qpb.Value_StringValue{StringValue: v}}
	}
	return out
}

func decodePayload(payload map[string]*qpb.Value) map[string]string {
	if len(payload) == 0 {
		return nil
	}
	out := make(map[string]string, len(payload))
	for k, v := range payload {
		if s := v.GetStringValue(); s != "" {
			out[k] = s
		}
	}
	return out
}

// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metadata

import "context"

// Repository persists the derived search records.
type Repository interface {
	ListFaceRecords(context context.Context) (map[int64]FaceRecord, error)
	UpsertFaceRecord(context context.Context, record FaceRecord) error
	ListCardRecords(context context.Context) (map[int64]CardRecord, error)
	UpsertCardRecord(context context.Context, record CardRecord) error
}

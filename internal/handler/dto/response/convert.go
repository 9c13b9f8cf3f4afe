package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

// copyView maps a read model onto its response shape: UUIDs become strings
// and timestamps become Unix seconds.
func copyView(dst, src any) {
	// Fails only on mismatched struct definitions.
	if err := copier.CopyWithOption(dst, src, viewCopyOption); err != nil {
		panic(err)
	}
}

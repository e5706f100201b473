package uploads

import (
	"context"

	"github.com/devfoliohq/devfolio-api/pkg/db"
	"github.com/minio/minio-go/v7"
)

var ctx = context.Background()

func GetObject(bucket string, objName string) (*minio.Object, minio.ObjectInfo, error) {
	obj, err := db.Uploads.GetObject(ctx, bucket, objName, minio.GetObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, err
	}

	objInfo, err := db.Uploads.StatObject(ctx, bucket, objName, minio.StatObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, err
	}

	return obj, objInfo, nil
}

package main

import (
	"errors"
	"strconv"

	"github.com/tuannh982/assoc-array/utils/collections"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.WithFields(log.Fields{"component": "demo"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.DebugLevel)

	arr := collections.New[string, int](collections.WithLogger(logger))
	arr.Set("x", 1)
	arr.Set("y", 2)
	arr.Set("x", 3)
	logger.WithField("size", arr.Size()).Info(arr.String())

	if _, err := arr.Get("z"); errors.Is(err, collections.ErrKeyNotFound) {
		logger.WithError(err).Info("lookup failed")
	}

	snapshot := arr.Clone()
	arr.Remove("x")
	for i := 0; i < collections.DefaultCapacity; i++ {
		arr.Set("k"+strconv.Itoa(i), i)
	}
	logger.WithFields(log.Fields{
		"size":     arr.Size(),
		"capacity": arr.Cap(),
	}).Info(arr.String())
	logger.WithField("size", snapshot.Size()).Info(snapshot.String())
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func SendMessageOrLog(
	w http.ResponseWriter,
	logger logrus.FieldLogger,
	m string,
) {
	_, err := SendJSON(w, map[string]string{
		"message": m,
	})
	if err != nil {
		logger.WithFields(logrus.Fields{
			"message": m,
			"error":   err,
		}).Error("failed to send message")
	}
}

func sendJSONOrLog(w http.ResponseWriter, logger logrus.FieldLogger, v any) {
	_, err := SendJSON(w, v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.WithFields(logrus.Fields{
			"response": v,
			"error":    err,
		}).Error("unable to send response")
	}
}

func sendErrorOrLog(
	w http.ResponseWriter,
	logger logrus.FieldLogger,
	statusCode int,
	e error,
) {
	payload, err := json.Marshal(wrapError(e))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.WithFields(logrus.Fields{
			"sent error": e,
			"error":      err,
		}).Error("unable to encode error message")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(payload); err != nil {
		logger.WithFields(logrus.Fields{
			"sent error": e,
			"error":      err,
		}).Error("failed to send error message")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}

func Status(logger logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		SendMessageOrLog(w, logger, "ok")
	}
}

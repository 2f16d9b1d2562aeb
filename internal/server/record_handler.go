package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"treense/internal/dao"
	"treense/internal/model"
	"treense/internal/utils"
)

const recordKey = "record"

func (s *Server) SetRecordToContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		recordIdStr := c.Param("record_id")
		if recordIdStr == "" {
			c.Next()
			return
		}

		recordId, err := primitive.ObjectIDFromHex(recordIdStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid record_id",
			})
			return
		}

		record, err := s.store.GetRecordById(c.Request.Context(), recordId)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "internal server error",
			})
			return
		} else if record == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": "record not found",
			})
			return
		}
		c.Set(recordKey, record)
		c.Next()
	}
}

// handleCreateRecord save a classification record
// @Summary Save a classification record
// @Description Validates and persists one classification result; the health status is lower-cased and missing treeId/timestamp are defaulted
// @Tags records
// @Accept json
// @Produce json
// @Param req body dao.CreateRecordRequest true "classification record"
// @Success 200 {object} dao.CreateRecordResponse "saved"
// @Failure 400 {object} ErrorResponse "invalid body or missing required fields"
// @Failure 500 {object} ErrorResponse "storage unavailable"
// @Router /api/v1/records [post]
func (s *Server) handleCreateRecord(c *gin.Context) {
	var req dao.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Warnf("create record: bad body: %v", err)
		s.writeError(c, http.StatusBadRequest, errors.New("invalid JSON data"))
		return
	}

	rec, verr := req.Validate(time.Now())
	if verr != nil {
		s.writeError(c, http.StatusBadRequest, verr)
		return
	}

	if err := s.store.CreateRecord(c.Request.Context(), rec); err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	s.archiveImage(c, rec)

	c.JSON(http.StatusOK, dao.CreateRecordResponse{
		Success: true,
		Id:      rec.Id.Hex(),
		Record:  dao.FromRecordModel(rec),
	})
}

// archiveImage keeps a decoded copy of the image payload in the object
// store. Best effort: failures are logged, never surfaced to the caller.
func (s *Server) archiveImage(c *gin.Context, rec *model.Record) {
	if s.archiver == nil {
		return
	}

	data, contentType, err := utils.DecodeImageData(rec.ImageData)
	if err != nil {
		s.logger.Warnf("archive record %s: %v", rec.Id.Hex(), err)
		return
	}

	key := fmt.Sprintf("records/%s.%s", rec.Id.Hex(), utils.ImageExt(contentType))
	if err := utils.UploadImageToMinio(c.Request.Context(), s.archiver, s.conf.S3.Bucket, key, data, contentType); err != nil {
		s.logger.Warnf("archive record %s: %v", rec.Id.Hex(), err)
	}
}

// handleListRecords list classification records
// @Summary List classification records
// @Description Returns up to limit records ordered by analysis timestamp, newest first by default
// @Tags records
// @Accept json
// @Produce json
// @Param limit query int false "max records to return" default(100)
// @Param sort query string false "timestamp order, asc or desc" default(desc)
// @Success 200 {object} dao.ListRecordsResponse "records"
// @Failure 400 {object} ErrorResponse "invalid query"
// @Failure 500 {object} ErrorResponse "storage unavailable"
// @Router /api/v1/records [get]
func (s *Server) handleListRecords(c *gin.Context) {
	var req dao.ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	if req.Limit == 0 {
		req.Limit = model.DefaultListLimit
	}
	order := model.SortDesc
	if req.Sort == string(model.SortAsc) {
		order = model.SortAsc
	}

	records, err := s.store.ListRecords(c.Request.Context(), int64(req.Limit), order)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	count, err := s.store.CountRecords(c.Request.Context())
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	resp := dao.ListRecordsResponse{
		Success: true,
		Count:   count,
		Data:    make([]dao.RecordSpec, 0, len(records)),
	}
	for i := range records {
		resp.Data = append(resp.Data, *dao.FromRecordModel(&records[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetRecord get one classification record
// @Summary Get one classification record
// @Tags records
// @Accept json
// @Produce json
// @Param record_id path string true "record id (hex)"
// @Success 200 {object} dao.RecordSpec "record"
// @Failure 400 {object} ErrorResponse "invalid record id"
// @Failure 404 {object} ErrorResponse "record not found"
// @Failure 500 {object} ErrorResponse "storage unavailable"
// @Router /api/v1/record/{record_id} [get]
func (s *Server) handleGetRecord(c *gin.Context) {
	rec := c.MustGet(recordKey).(*model.Record)
	c.JSON(http.StatusOK, dao.FromRecordModel(rec))
}

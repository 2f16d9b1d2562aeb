package server

import (
	"context"
	goerrors "errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	_ "treense/docs"
	"treense/internal/config"
	"treense/internal/dao"
	"treense/internal/model"
	"treense/pkg/log"
)

const httpXRequestId = "X-Request-Id"

// RecordStore is the persistence surface the handlers depend on.
// *model.Store implements it; tests substitute an in-memory fake.
type RecordStore interface {
	CreateRecord(ctx context.Context, rec *model.Record) error
	ListRecords(ctx context.Context, limit int64, order model.SortOrder) ([]model.Record, error)
	CountRecords(ctx context.Context) (int64, error)
	GetRecordById(ctx context.Context, id primitive.ObjectID) (*model.Record, error)
	Ping(ctx context.Context) error
}

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	store      RecordStore
	archiver   *minio.Client
	logger     *logrus.Entry
}

func NewServer(ctx context.Context, conf *config.Config, store RecordStore) (*Server, error) {
	s := &Server{
		conf:   conf,
		store:  store,
		logger: log.GetLogger(ctx),
	}

	// Image archival is optional; it stays off unless an endpoint is
	// configured.
	if conf.S3.Endpoint != "" {
		cli, err := minio.New(conf.S3.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.S3.AccessKeyID, conf.S3.SecretAccessKey, ""),
			Secure: conf.S3.UseSSL,
			Region: conf.S3.Region,
		})
		if err != nil {
			return nil, err
		}
		s.archiver = cli
	}

	return s, nil
}

func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(httpXRequestId)
		if requestId == "" {
			requestId = strings.ReplaceAll(uuid.New().String(), "-", "")
		}
		c.Header(httpXRequestId, requestId)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()
		c.Next()
		latency := time.Since(t)
		status := c.Writer.Status()

		logrus.Info("ip: ", c.ClientIP(), " method: ", c.Request.Method, " path: ",
			c.Request.URL.Path, " status: ", status, " latency: ", latency)
	}
}

func (s *Server) Start() {
	gin.SetMode(gin.ReleaseMode)
	router := s.SetUpRouter()
	pprof.Register(router)
	s.httpServer = &http.Server{
		Addr:    s.conf.Addr,
		Handler: router,
	}

	var err error
	if s.conf.SSLCert != "" && s.conf.SSLKey != "" {
		logrus.Infof("start https server on %s", s.conf.Addr)
		err = s.httpServer.ListenAndServeTLS(s.conf.SSLCert, s.conf.SSLKey)
	} else {
		logrus.Infof("start http server on %s", s.conf.Addr)
		err = s.httpServer.ListenAndServe()
	}
	if err != nil && !goerrors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}

func (s *Server) Shutdown() {
	err := s.httpServer.Shutdown(context.Background())
	if err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}
}

// ErrorResponse is the failure envelope. Validation failures also carry
// every missing field so the caller can fix all of them at once.
type ErrorResponse struct {
	Success       bool     `json:"success"`
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields,omitempty"`
}

func (s *Server) writeError(c *gin.Context, code int, err error) {
	resp := ErrorResponse{
		Error: err.Error(),
	}
	var verr *dao.ValidationError
	if goerrors.As(err, &verr) {
		resp.MissingFields = verr.MissingFields
	}
	c.JSON(code, resp)
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("sortorder", func(fl validator.FieldLevel) bool {
			matched, _ := regexp.MatchString(`^(asc|desc)$`, fl.Field().String())
			return matched
		})
	}
}

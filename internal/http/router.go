package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterHealth 健康检查
func (r *Router) RegisterHealth() {
	r.Handle("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "ok"}))
	})
}

// RegisterEmployeeRoutes 员工目录 + 本地头像
func (r *Router) RegisterEmployeeRoutes(e *EmployeeHandler, img *ImageHandler) {
	r.Handle("/api/employees", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		e.List(w, req)
	})

	r.Handle("/api/employees/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/employees/")
		switch {
		case rest == "new-joinees" && req.Method == http.MethodGet:
			e.NewJoinees(w, req)
		case rest == "reconcile" && req.Method == http.MethodGet:
			e.Reconcile(w, req)
		case rest == "refresh" && req.Method == http.MethodPost:
			e.Refresh(w, req)
		default:
			id, tail, _ := strings.Cut(rest, "/")
			if id == "" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			switch {
			case tail == "" && req.Method == http.MethodGet:
				e.Get(w, req, id)
			case tail == "image" && req.Method == http.MethodPut:
				e.UpdateImage(w, req, id)
			case tail == "image" && req.Method == http.MethodPost:
				e.UploadImage(w, req, id)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}
	})

	r.Handle("/api/departments", e.Departments)
	r.Handle("/api/locations", e.Locations)
	r.Handle("/api/stats", e.Stats)

	r.Handle("/api/images/", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(req.URL.Path, "/api/images/")
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		img.Serve(w, req, id)
	})
}

// RegisterContentRoutes 新闻/任务/知识库/制度
func (r *Router) RegisterContentRoutes(c *ContentHandler) {
	r.Handle("/api/news", c.News)
	r.Handle("/api/news/", idRoute("/api/news/", c.NewsByID))

	r.Handle("/api/tasks", c.Tasks)
	r.Handle("/api/tasks/", idRoute("/api/tasks/", c.TasksByID))

	r.Handle("/api/knowledge", c.Knowledge)
	r.Handle("/api/knowledge/", idRoute("/api/knowledge/", c.KnowledgeByID))

	r.Handle("/api/policies", c.Policies)
	r.Handle("/api/policies/", idRoute("/api/policies/", c.PoliciesByID))
}

// RegisterHelpRoutes 帮助台
func (r *Router) RegisterHelpRoutes(h *HelpHandler) {
	r.Handle("/api/help", h.Requests)
	r.Handle("/api/help/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/help/")
		id, tail, _ := strings.Cut(rest, "/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case tail == "" && req.Method == http.MethodDelete:
			h.Delete(w, req, id)
		case tail == "status" && req.Method == http.MethodPut:
			h.UpdateStatus(w, req, id)
		case tail == "replies" && req.Method == http.MethodPost:
			h.AddReply(w, req, id)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// RegisterOpsRoutes 流程/考勤/汇报关系
func (r *Router) RegisterOpsRoutes(o *OpsHandler) {
	r.Handle("/api/workflows", o.Workflows)
	r.Handle("/api/workflows/", idRoute("/api/workflows/", o.WorkflowsByID))

	r.Handle("/api/attendance", o.Attendance)
	r.Handle("/api/attendance/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/attendance/")
		switch {
		case rest == "export" && req.Method == http.MethodGet:
			o.AttendanceExport(w, req)
		case rest != "" && !strings.Contains(rest, "/"):
			o.AttendanceByID(w, req, rest)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	r.Handle("/api/hierarchy", o.Hierarchy)
	r.Handle("/api/hierarchy/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/hierarchy/")
		switch {
		case rest == "clear-all":
			o.HierarchyClearAll(w, req)
		case rest != "" && !strings.Contains(rest, "/"):
			o.HierarchyByEmployee(w, req, rest)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// RegisterPersonalRoutes 待办/会话/节假日
func (r *Router) RegisterPersonalRoutes(p *PersonalHandler) {
	r.Handle("/api/users/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/users/")
		userID, tail, _ := strings.Cut(rest, "/")
		if userID == "" || tail == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case tail == "todos":
			p.Todos(w, req, userID)
		case strings.HasPrefix(tail, "todos/"):
			todoPart := strings.TrimPrefix(tail, "todos/")
			if id, ok := strings.CutSuffix(todoPart, "/toggle"); ok {
				p.TodoByID(w, req, userID, id, true)
				return
			}
			if strings.Contains(todoPart, "/") {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			p.TodoByID(w, req, userID, todoPart, false)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	r.Handle("/api/chat/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/chat/")
		sessionID, tail, _ := strings.Cut(rest, "/")
		if sessionID == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch tail {
		case "":
			p.ChatClear(w, req, sessionID)
		case "messages":
			p.ChatMessages(w, req, sessionID)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	r.Handle("/api/holidays", p.Holidays)
}

// RegisterRotationRoutes 轮播状态
func (r *Router) RegisterRotationRoutes(h *RotationHandler) {
	r.Handle("/api/rotation", h.State)
}

// RegisterBookingRoutes 会议室/告警（代理远端 booking 服务）
func (r *Router) RegisterBookingRoutes(b *BookingHandler) {
	r.Handle("/api/meeting-rooms", b.Rooms)
	r.Handle("/api/meeting-rooms/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/meeting-rooms/")
		switch {
		case rest == "locations" && req.Method == http.MethodGet:
			b.RoomLocations(w, req)
		case rest == "floors" && req.Method == http.MethodGet:
			b.RoomFloors(w, req)
		case rest == "clear-all-bookings":
			b.ClearAllBookings(w, req)
		default:
			roomID, tail, _ := strings.Cut(rest, "/")
			if roomID == "" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			switch {
			case tail == "book":
				b.Book(w, req, roomID)
			case strings.HasPrefix(tail, "booking/"):
				bookingID := strings.TrimPrefix(tail, "booking/")
				if bookingID == "" || strings.Contains(bookingID, "/") {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				b.CancelBooking(w, req, roomID, bookingID)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}
	})

	r.Handle("/api/alerts", b.Alerts)
	r.Handle("/api/alerts/", idRoute("/api/alerts/", b.AlertsByID))
}

// idRoute adapts a single-segment {id} suffix to handler(w, r, id).
func idRoute(prefix string, handler func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimPrefix(req.URL.Path, prefix)
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, req, id)
	}
}

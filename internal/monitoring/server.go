package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// MonitoringServer serves the ops dashboard on its own port: process and
// database health plus live shop counters, streamed to the dashboard over a
// websocket.
type MonitoringServer struct {
	db         *pgxpool.Pool
	port       int
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
}

type DashboardStats struct {
	DatabaseStatus    string  `json:"database_status"`
	ActiveConnections int     `json:"active_connections"`
	ResponseTime      int64   `json:"response_time_ms"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	DiskPercent       float64 `json:"disk_percent"`
	DBSize            string  `json:"db_size"`
	Uptime            string  `json:"uptime"`
	MemoryUsed        string  `json:"memory_used"`
	MemoryTotal       string  `json:"memory_total"`
	DiskUsed          string  `json:"disk_used"`
	DiskTotal         string  `json:"disk_total"`

	PendingOrders int `json:"pending_orders"`
	UnpaidOrders  int `json:"unpaid_orders"`
	BillsToday    int `json:"bills_today"`
	TotalWorkers  int `json:"total_workers"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewMonitoringServer(db *pgxpool.Pool, port int) *MonitoringServer {
	return &MonitoringServer{
		db:      db,
		port:    port,
		clients: make(map[*websocket.Conn]bool),
	}
}

func (ms *MonitoringServer) Start() {
	r := mux.NewRouter()

	r.HandleFunc("/", ms.dashboardPage).Methods("GET")
	r.HandleFunc("/api/stats", ms.getStats).Methods("GET")
	r.HandleFunc("/ws", ms.handleWebSocket)

	// Push fresh stats to connected dashboards
	go ms.broadcastLoop()

	addr := fmt.Sprintf(":%d", ms.port)
	log.Printf("Monitoring dashboard running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func (ms *MonitoringServer) dashboardPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, dashboardHTML)
}

func (ms *MonitoringServer) getStats(w http.ResponseWriter, r *http.Request) {
	stats := ms.collectStats()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (ms *MonitoringServer) collectStats() DashboardStats {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := ms.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	dbStatus := "healthy"
	if err != nil {
		dbStatus = "unhealthy"
	}

	var activeConns int
	ms.db.QueryRow(ctx, "SELECT count(*) FROM pg_stat_activity").Scan(&activeConns)

	var dbSizeBytes int64
	ms.db.QueryRow(ctx, "SELECT pg_database_size(current_database())").Scan(&dbSizeBytes)
	dbSize := formatBytes(uint64(dbSizeBytes))

	var uptimeSec int
	ms.db.QueryRow(ctx, "SELECT EXTRACT(EPOCH FROM (NOW() - pg_postmaster_start_time()))::int").Scan(&uptimeSec)

	// System metrics
	cpuPercents, _ := cpu.Percent(time.Second, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	stats := DashboardStats{
		DatabaseStatus:    dbStatus,
		ActiveConnections: activeConns,
		ResponseTime:      responseTime,
		CPUPercent:        cpuPercent,
		MemoryPercent:     memStats.UsedPercent,
		DiskPercent:       diskStats.UsedPercent,
		DBSize:            dbSize,
		Uptime:            formatUptime(uptimeSec),
		MemoryUsed:        formatBytes(memStats.Used),
		MemoryTotal:       formatBytes(memStats.Total),
		DiskUsed:          formatBytes(diskStats.Used),
		DiskTotal:         formatBytes(diskStats.Total),
	}

	// Shop counters; best effort, zeros when the queries fail
	ms.db.QueryRow(ctx, "SELECT count(*) FROM orders WHERE status = 'Pending'").Scan(&stats.PendingOrders)
	ms.db.QueryRow(ctx, "SELECT count(*) FROM orders WHERE LOWER(payment_status) <> 'paid'").Scan(&stats.UnpaidOrders)
	ms.db.QueryRow(ctx, "SELECT count(*) FROM bills WHERE today_date = CURRENT_DATE").Scan(&stats.BillsToday)
	ms.db.QueryRow(ctx, "SELECT count(*) FROM workers").Scan(&stats.TotalWorkers)

	return stats
}

func (ms *MonitoringServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Monitoring] WebSocket upgrade failed: %v", err)
		return
	}

	ms.clientsMux.Lock()
	ms.clients[conn] = true
	ms.clientsMux.Unlock()

	// Send a snapshot immediately so the dashboard renders without waiting
	conn.WriteJSON(ms.collectStats())

	// Reader loop just detects disconnects
	go func() {
		defer func() {
			ms.clientsMux.Lock()
			delete(ms.clients, conn)
			ms.clientsMux.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (ms *MonitoringServer) broadcastLoop() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ms.clientsMux.Lock()
		if len(ms.clients) == 0 {
			ms.clientsMux.Unlock()
			continue
		}
		ms.clientsMux.Unlock()

		stats := ms.collectStats()

		ms.clientsMux.Lock()
		for conn := range ms.clients {
			if err := conn.WriteJSON(stats); err != nil {
				delete(ms.clients, conn)
				conn.Close()
			}
		}
		ms.clientsMux.Unlock()
	}
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func formatUptime(seconds int) string {
	d := seconds / 86400
	h := (seconds % 86400) / 3600
	m := (seconds % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
<title>Tailor Backend Monitoring</title>
<style>
body { font-family: sans-serif; background: #1e1e2e; color: #eee; margin: 2em; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1em; }
.card { background: #2a2a3e; border-radius: 8px; padding: 1em; }
.card h3 { margin: 0 0 0.5em; font-size: 0.85em; color: #999; text-transform: uppercase; }
.card .value { font-size: 1.6em; font-weight: bold; }
.healthy { color: #7ee787; } .unhealthy { color: #ff7b72; }
</style>
</head>
<body>
<h1>Tailor Backend Monitoring</h1>
<div class="grid" id="stats"></div>
<script>
const fields = [
  ["database_status", "Database"], ["active_connections", "DB Connections"],
  ["response_time_ms", "DB Ping (ms)"], ["db_size", "DB Size"], ["uptime", "DB Uptime"],
  ["cpu_percent", "CPU %"], ["memory_percent", "Memory %"], ["disk_percent", "Disk %"],
  ["pending_orders", "Pending Orders"], ["unpaid_orders", "Unpaid Orders"],
  ["bills_today", "Bills Today"], ["total_workers", "Workers"]
];
function render(s) {
  document.getElementById("stats").innerHTML = fields.map(([k, label]) => {
    let v = s[k];
    if (typeof v === "number") v = Math.round(v * 10) / 10;
    const cls = k === "database_status" ? v : "";
    return '<div class="card"><h3>' + label + '</h3><div class="value ' + cls + '">' + v + '</div></div>';
  }).join("");
}
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (e) => render(JSON.parse(e.data));
fetch("/api/stats").then(r => r.json()).then(render);
</script>
</body>
</html>`

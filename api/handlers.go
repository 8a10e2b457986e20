package api

import (
	"fmt"
	"net/http"

	"github.com/mheil-dev/strcalc/calc"
	"github.com/mheil-dev/strcalc/config"
)

// handleCreateSession handles POST /api/v1/session
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionCreateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := s.sessions.CreateSession(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to create session: %v", err))
		return
	}

	response := SessionCreateResponse{
		SessionID: session.ID,
		Precision: session.Precision,
		CreatedAt: session.CreatedAt,
	}

	writeJSON(w, http.StatusCreated, response)
}

// handleListSessions handles GET /api/v1/session
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ids := s.sessions.ListSessions()

	response := map[string]interface{}{
		"sessions": ids,
		"count":    len(ids),
	}

	writeJSON(w, http.StatusOK, response)
}

// handleGetSessionStatus handles GET /api/v1/session/{id}
func (s *Server) handleGetSessionStatus(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	session.mu.Lock()
	carry := session.Engine.CarryFlag()
	session.mu.Unlock()

	response := SessionStatusResponse{
		SessionID: sessionID,
		Precision: session.Precision,
		CarryFlag: carry,
		CreatedAt: session.CreatedAt,
	}

	writeJSON(w, http.StatusOK, response)
}

// handleDestroySession handles DELETE /api/v1/session/{id}
func (s *Server) handleDestroySession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := s.sessions.DestroySession(sessionID); err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Session destroyed",
	})
}

// operandToBuffer parses an Operand into a Buffer of the session's width.
func operandToBuffer(e *calc.Engine, op Operand) (calc.Buffer, error) {
	buf := e.NewBuffer()
	sign := op.Sign
	if sign == 0 {
		sign = 1
	}
	digits := op.Digits
	if digits == "" {
		digits = "0"
	}
	if _, err := e.FromString(sign, 10, digits, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// handleCompute handles POST /api/v1/session/{id}/compute
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req ComputeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	e := session.Engine

	a, err := operandToBuffer(e, req.A)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed operand a: "+err.Error())
		return
	}

	bits := req.Bits
	if bits == 0 {
		bits = e.Precision()
	}

	var result calc.Buffer
	var carry bool

	needsB := map[string]bool{
		"add": true, "sub": true, "mul": true, "div": true, "mod": true,
		"and": true, "andnot": true, "or": true, "xor": true,
		"shl": true, "shr": true, "shrs": true,
	}
	var b calc.Buffer
	if needsB[req.Op] {
		b, err = operandToBuffer(e, req.B)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Malformed operand b: "+err.Error())
			return
		}
	}

	switch req.Op {
	case "add":
		result, carry = e.Add(a, b, nil)
	case "sub":
		result, carry = e.Sub(a, b, nil)
	case "mul":
		result = e.Mul(a, b, nil)
	case "div":
		result, carry, err = e.Div(a, b, nil)
	case "mod":
		result, err = e.Mod(a, b, nil)
	case "and":
		result = e.And(a, b, nil)
	case "andnot":
		result = e.AndNot(a, b, nil)
	case "or":
		result = e.Or(a, b, nil)
	case "xor":
		result = e.Xor(a, b, nil)
	case "not":
		result = e.Not(a, nil)
	case "neg":
		result = e.Neg(a, nil)
	case "shl":
		result = e.ShlI(a, req.Shift, bits, req.Signed, nil)
	case "shr":
		result, carry = e.ShrI(a, req.Shift, bits, req.Signed, nil)
	case "shrs":
		result, carry = e.ShrsI(a, req.Shift, bits, req.Signed, nil)
	default:
		writeError(w, http.StatusBadRequest, "Unknown op: "+req.Op)
		return
	}

	if err != nil {
		if calcErr, ok := err.(*calc.Error); ok {
			writeError(w, http.StatusUnprocessableEntity, calcErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	text, printErr := e.Print(result, bits, calc.BaseDec, true, false)
	if printErr != nil {
		writeError(w, http.StatusInternalServerError, printErr.Error())
		return
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastState(sessionID, map[string]interface{}{
			"op":        req.Op,
			"result":    text,
			"carryFlag": carry,
		})
	}

	fmt.Fprintf(session.Output, "%s -> %s\n", req.Op, text)

	writeJSON(w, http.StatusOK, ComputeResponse{Result: text, CarryFlag: carry})
}

// handlePrint handles POST /api/v1/session/{id}/print
func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req PrintRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	e := session.Engine

	v, err := operandToBuffer(e, req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed value: "+err.Error())
		return
	}

	bits := req.Bits
	if bits == 0 {
		bits = e.Precision()
	}

	base, err := parseBase(req.Base)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := e.Print(v, bits, base, req.Signed, req.Upper)
	if err != nil {
		if calcErr, ok := err.(*calc.Error); ok {
			writeError(w, http.StatusUnprocessableEntity, calcErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	fmt.Fprintf(session.Output, "print(%s) -> %s\n", req.Base, text)

	writeJSON(w, http.StatusOK, PrintResponse{Text: text})
}

func parseBase(name string) (calc.Base, error) {
	switch name {
	case "bin":
		return calc.BaseBin, nil
	case "oct":
		return calc.BaseOct, nil
	case "dec", "":
		return calc.BaseDec, nil
	case "hex":
		return calc.BaseHex, nil
	default:
		return 0, fmt.Errorf("unknown base %q", name)
	}
}

// handleInspect handles POST /api/v1/session/{id}/inspect
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req InspectRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	e := session.Engine

	v, err := operandToBuffer(e, req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed value: "+err.Error())
		return
	}

	bits := req.Bits
	if bits == 0 {
		bits = e.Precision()
	}

	writeJSON(w, http.StatusOK, InspectResponse{
		Sign:          e.Sign(v),
		IsZero:        e.IsZero(v, bits),
		IsNegative:    e.IsNegative(v),
		HighestSetBit: e.HighestSetBit(v),
		LowestSetBit:  e.LowestSetBit(v),
		Popcount:      e.Popcount(v, bits),
	})
}

// handleGetConfig handles GET /api/v1/config
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load configuration")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleUpdateConfig handles PUT /api/v1/config
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cfg config.Config
	if err := readJSON(r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := cfg.Save(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save configuration")
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Configuration updated",
	})
}

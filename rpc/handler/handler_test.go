// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/bytestring"
	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/rpc/handler"
	"github.com/bitmark-inc/ledgerd/rpc/mocks"
	storageMocks "github.com/bitmark-inc/ledgerd/storage/mocks"
)

const (
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int   `json:"id"`
	Result int   `json:"result"`
	Error  error `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newHandler(t *testing.T, s *rpc.Server, maxConnections uint64) (handler.Handler, *mocks.MockPoster, *storageMocks.MockRecordStore, *gomock.Controller) {
	ctl := gomock.NewController(t)
	p := mocks.NewMockPoster(ctl)
	store := storageMocks.NewMockRecordStore(ctl)

	h := handler.New(
		logger.New(fixtures.LogCategory),
		s,
		p,
		store,
		time.Now(),
		"1.0",
		maxConnections,
	)
	return h, p, store, ctl
}

func allowDetails(h handler.Handler) {
	allow := make(map[string][]*net.IPNet)
	_, ipNet, _ := net.ParseCIDR("192.0.2.1/32")
	allow["details"] = []*net.IPNet{ipNet}
	h.SetAllow(allow)
}

func TestRoot(t *testing.T) {
	h, _, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://not.found", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	resp := w.Result()
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)

	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestRPC(t *testing.T) {
	s := rpc.NewServer()
	_ = s.Register(Add{})

	h, _, _, ctl := newHandler(t, s, 5)
	defer ctl.Finish()

	add := AddArg{
		A: 1,
		B: 2,
	}

	arg := jReq{
		ID:     5,
		Method: "Add.Add",
		Params: []AddArg{add},
	}
	data, _ := json.Marshal(arg)

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	h, _, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	h, _, _, ctl := newHandler(t, rpc.NewServer(), 0)
	defer ctl.Finish()

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, tooManyRequests, j.Error, "wrong error")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode, "wrong status code")
}

func TestRPCWhenServeError(t *testing.T) {
	h, _, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	data, _ := json.Marshal(jReq{})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	b, _ := ioutil.ReadAll(resp.Body)
	assert.Contains(t, string(b), "internal server error", "wrong response")
}

func TestDetails(t *testing.T) {
	h, p, store, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()
	allowDetails(h)

	last := bytestring.New([]byte{0x01, 0x02})
	p.EXPECT().Namespace().Return(fixtures.Namespace).Times(1)
	store.EXPECT().GetLastTransaction(gomock.Any()).Return(last, nil).Times(1)

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	resp := w.Result()
	var reply handler.DetailsReply
	err := json.NewDecoder(resp.Body).Decode(&reply)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, fixtures.Namespace, reply.Namespace, "wrong namespace")
	assert.Equal(t, last, reply.LastTransaction, "wrong last transaction")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestDetailsWhenWrongHTTPMethod(t *testing.T) {
	h, _, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()
	allowDetails(h)

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	resp := w.Result()
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

func TestDetailsWhenNotAllow(t *testing.T) {
	h, _, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	resp := w.Result()
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, "forbidden", j.Error, "wrong not allow")
}

func TestDetailsWhenTooManyConnections(t *testing.T) {
	h, _, _, ctl := newHandler(t, rpc.NewServer(), 0)
	defer ctl.Finish()
	allowDetails(h)

	req := httptest.NewRequest("GET", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	resp := w.Result()
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, tooManyRequests, j.Error, "wrong error")
}

func TestDetailsWhenStoreFails(t *testing.T) {
	h, _, store, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()
	allowDetails(h)

	store.EXPECT().GetLastTransaction(gomock.Any()).Return(bytestring.Empty, os.ErrClosed).Times(1)

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	resp := w.Result()
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusInternalServerError, j.Code, "wrong code")
}

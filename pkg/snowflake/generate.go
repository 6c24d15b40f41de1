package snowflake

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once

	errInvalidMachineID   = errors.New("invalid snowflake machine id")
	errGeneratorUninitial = errors.New("snowflake generator is not initialized")
)

func Init(machineID, dataCenterID int64) error {
	var initErr error

	once.Do(func() {
		if machineID < 0 || machineID > 31 {
			initErr = errInvalidMachineID
			return
		}
		nodeID := (dataCenterID << 5) | machineID // datacenterID 和 machineID 都是 0~31

		var err error
		node, err = snowflake.NewNode(nodeID)

		if err != nil {
			initErr = err
			return
		}
	})

	return initErr
}

func NextID() (int64, error) {
	if node == nil {
		return 0, errGeneratorUninitial
	}

	return node.Generate().Int64(), nil
}

// NextOrderNumber 生成订单号，如 ORD-K3J9X2M1
func NextOrderNumber() (string, error) {
	id, err := NextID()
	if err != nil {
		return "", err
	}
	return "ORD-" + strings.ToUpper(strconv.FormatInt(id, 36)), nil
}

// NextInvoiceNumber 生成发票号，前缀来自店铺设置
func NextInvoiceNumber(prefix string) (string, error) {
	if prefix == "" {
		prefix = "INV"
	}
	id, err := NextID()
	if err != nil {
		return "", err
	}
	return prefix + "-" + strings.ToUpper(strconv.FormatInt(id, 36)), nil
}

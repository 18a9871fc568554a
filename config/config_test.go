package config

import (
	"testing"

	"github.com/oxrcfg/oxrcfg/constant"
	"github.com/oxrcfg/oxrcfg/filesystem"
	"github.com/oxrcfg/oxrcfg/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Should expose defaults through viper", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.ModuleDefault), ShouldEqual, constant.DefaultModule)
			So(viper.GetString(key.StoreRoot), ShouldEqual, constant.RootPath)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("store.backend"), ShouldEqual, "store_backend")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the module field", t, func() {
		field := Default[key.ModuleDefault]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "OXRCFG_MODULE_DEFAULT")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ModuleDefault)
		})

		Convey("typeName should describe the value", func() {
			strict := Default[key.MapperStrict]
			So(field.typeName(), ShouldEqual, "string")
			So(strict.typeName(), ShouldEqual, "bool")
		})
	})
}
